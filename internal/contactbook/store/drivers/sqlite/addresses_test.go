package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
)

func TestAddressRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactID := createTestContact(t, st, alice, "Eko")

	addressID, err := st.Addresses().CreateAddress(ctx, domain.Address{
		ContactID:  contactID,
		Street:     "Jalan Sudirman No. 1",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	require.NoError(t, err)

	got, err := st.Addresses().GetAddress(ctx, contactID, addressID)
	require.NoError(t, err)
	require.Equal(t, "Jalan Sudirman No. 1", got.Street)
	require.Equal(t, "Jakarta", got.City)
	require.Equal(t, "DKI Jakarta", got.Province)
	require.Equal(t, "Indonesia", got.Country)
	require.Equal(t, "12190", got.PostalCode)
}

func TestGetAddress_ScopedToContact(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactA := createTestContact(t, st, alice, "Eko")
	contactB := createTestContact(t, st, alice, "Budi")

	addressID, err := st.Addresses().CreateAddress(ctx, domain.Address{
		ContactID: contactA,
		Country:   "Indonesia",
	})
	require.NoError(t, err)

	// An address is never resolved by id alone.
	_, err = st.Addresses().GetAddress(ctx, contactB, addressID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Addresses().GetAddress(ctx, contactA, 99999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateAddress(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactID := createTestContact(t, st, alice, "Eko")

	addressID, err := st.Addresses().CreateAddress(ctx, domain.Address{
		ContactID: contactID,
		Country:   "Indonesia",
	})
	require.NoError(t, err)

	require.NoError(t, st.Addresses().UpdateAddress(ctx, domain.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     "Jalan Thamrin",
		City:       "Jakarta Pusat",
		Country:    "Indonesia",
		PostalCode: "10310",
	}))

	got, err := st.Addresses().GetAddress(ctx, contactID, addressID)
	require.NoError(t, err)
	require.Equal(t, "Jalan Thamrin", got.Street)
	require.Equal(t, "10310", got.PostalCode)

	require.ErrorIs(t, st.Addresses().UpdateAddress(ctx, domain.Address{
		ID:        99999,
		ContactID: contactID,
		Country:   "Indonesia",
	}), store.ErrNotFound)
}

func TestDeleteAddress(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactID := createTestContact(t, st, alice, "Eko")

	addressID, err := st.Addresses().CreateAddress(ctx, domain.Address{
		ContactID: contactID,
		Country:   "Indonesia",
	})
	require.NoError(t, err)

	require.NoError(t, st.Addresses().DeleteAddress(ctx, contactID, addressID))
	require.ErrorIs(t, st.Addresses().DeleteAddress(ctx, contactID, addressID), store.ErrNotFound)
}

func TestListAddresses(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactA := createTestContact(t, st, alice, "Eko")
	contactB := createTestContact(t, st, alice, "Budi")

	for _, country := range []string{"Indonesia", "Singapore", "Malaysia"} {
		_, err := st.Addresses().CreateAddress(ctx, domain.Address{
			ContactID: contactA,
			Country:   country,
		})
		require.NoError(t, err)
	}

	list, err := st.Addresses().ListAddresses(ctx, contactA)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Indonesia", list[0].Country, "addresses ordered by id")

	// Sibling contact has no addresses.
	list, err = st.Addresses().ListAddresses(ctx, contactB)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteAddressesByContact(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactID := createTestContact(t, st, alice, "Eko")

	for range 3 {
		_, err := st.Addresses().CreateAddress(ctx, domain.Address{
			ContactID: contactID,
			Country:   "Indonesia",
		})
		require.NoError(t, err)
	}

	require.NoError(t, st.Addresses().DeleteAddressesByContact(ctx, contactID))

	list, err := st.Addresses().ListAddresses(ctx, contactID)
	require.NoError(t, err)
	require.Empty(t, list)

	// Deleting under an empty contact is a no-op.
	require.NoError(t, st.Addresses().DeleteAddressesByContact(ctx, contactID))
}
