package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
)

func TestGetContact_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	bob := createTestUser(t, st, "bob")
	contactID := createTestContact(t, st, alice, "Eko")

	got, err := st.Contacts().GetContact(ctx, alice, contactID)
	require.NoError(t, err)
	require.Equal(t, "Eko", got.FirstName)
	require.Equal(t, alice, got.UserID)

	// Another user's id and a nonexistent id are indistinguishable.
	_, err = st.Contacts().GetContact(ctx, bob, contactID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Contacts().GetContact(ctx, alice, 99999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateContact_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	bob := createTestUser(t, st, "bob")
	contactID := createTestContact(t, st, alice, "Eko")

	err := st.Contacts().UpdateContact(ctx, domain.Contact{
		ID:        contactID,
		UserID:    bob,
		FirstName: "Hacked",
	})
	require.ErrorIs(t, err, store.ErrNotFound, "foreign contact should not be updatable")

	require.NoError(t, st.Contacts().UpdateContact(ctx, domain.Contact{
		ID:        contactID,
		UserID:    alice,
		FirstName: "Budi",
		LastName:  "Nugraha",
		Email:     "budi@example.com",
		Phone:     "0999",
	}))

	got, err := st.Contacts().GetContact(ctx, alice, contactID)
	require.NoError(t, err)
	require.Equal(t, "Budi", got.FirstName)
	require.Equal(t, "Nugraha", got.LastName)
	require.Equal(t, "budi@example.com", got.Email)
	require.Equal(t, "0999", got.Phone)
}

func TestDeleteContact_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	bob := createTestUser(t, st, "bob")
	contactID := createTestContact(t, st, alice, "Eko")

	require.ErrorIs(t, st.Contacts().DeleteContact(ctx, bob, contactID), store.ErrNotFound)

	require.NoError(t, st.Contacts().DeleteContact(ctx, alice, contactID))

	_, err := st.Contacts().GetContact(ctx, alice, contactID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteContact_CascadesAddresses(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	contactID := createTestContact(t, st, alice, "Eko")

	addressID, err := st.Addresses().CreateAddress(ctx, domain.Address{
		ContactID: contactID,
		Country:   "Indonesia",
	})
	require.NoError(t, err)

	require.NoError(t, st.Contacts().DeleteContact(ctx, alice, contactID))

	_, err = st.Addresses().GetAddress(ctx, contactID, addressID)
	require.ErrorIs(t, err, store.ErrNotFound, "addresses should cascade on contact delete")
}

func TestSearchContacts_Filters(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	bob := createTestUser(t, st, "bob")

	seed := []domain.Contact{
		{UserID: alice, FirstName: "Eko", LastName: "Kurniawan", Email: "eko@gmail.com", Phone: "0811"},
		{UserID: alice, FirstName: "Budi", LastName: "Ekowati", Email: "budi@yahoo.com", Phone: "0822"},
		{UserID: alice, FirstName: "Joko", LastName: "Santoso", Email: "joko@gmail.com", Phone: "0833"},
		{UserID: bob, FirstName: "Eko", LastName: "Prasetyo", Email: "eko.p@gmail.com", Phone: "0844"},
	}
	for _, c := range seed {
		_, err := st.Contacts().CreateContact(ctx, c)
		require.NoError(t, err)
	}

	page := domain.ContactFilter{Page: 0, Size: 10}

	t.Run("no filters returns only own contacts", func(t *testing.T) {
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, page)
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, contacts, 3)
	})

	t.Run("name matches first or last name", func(t *testing.T) {
		f := page
		f.Name = "Eko"
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, f)
		require.NoError(t, err)
		require.EqualValues(t, 2, total, "Eko matches a first name and a last name")
		require.Len(t, contacts, 2)
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		f := page
		f.Name = "Eko"
		f.Email = "gmail"
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, f)
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "Eko", contacts[0].FirstName)
	})

	t.Run("phone filter", func(t *testing.T) {
		f := page
		f.Phone = "0833"
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, f)
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "Joko", contacts[0].FirstName)
	})

	t.Run("no match returns empty page", func(t *testing.T) {
		f := page
		f.Name = "Nonexistent"
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, f)
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, contacts)
	})
}

func TestSearchContacts_Pagination(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := createTestUser(t, st, "alice")

	for i := range 25 {
		_, err := st.Contacts().CreateContact(ctx, domain.Contact{
			UserID:    alice,
			FirstName: fmt.Sprintf("Contact%02d", i),
		})
		require.NoError(t, err)
	}

	t.Run("first page", func(t *testing.T) {
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, domain.ContactFilter{Page: 0, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 25, total)
		require.Len(t, contacts, 10)
		require.Equal(t, "Contact00", contacts[0].FirstName)
	})

	t.Run("last partial page", func(t *testing.T) {
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, domain.ContactFilter{Page: 2, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 25, total)
		require.Len(t, contacts, 5)
	})

	t.Run("page beyond results is empty but total still reported", func(t *testing.T) {
		contacts, total, err := st.Contacts().SearchContacts(ctx, alice, domain.ContactFilter{Page: 1000, Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 25, total)
		require.Empty(t, contacts)
	})
}
