package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
)

func TestCreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().CreateUser(ctx, domain.User{
		Username:     "alice",
		PasswordHash: "hash",
		Name:         "Alice",
	})
	require.NoError(t, err)

	_, err = st.Users().CreateUser(ctx, domain.User{
		Username:     "alice",
		PasswordHash: "other",
		Name:         "Other Alice",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	createTestUser(t, st, "alice")

	u, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "Test alice", u.Name)
	require.Nil(t, u.TokenHash)
	require.Nil(t, u.TokenExpiresAt)

	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := createTestUser(t, st, "alice")

	require.NoError(t, st.Users().UpdateUser(ctx, userID, "Alice Renamed", "newhash"))

	u, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Alice Renamed", u.Name)
	require.Equal(t, "newhash", u.PasswordHash)

	require.ErrorIs(t, st.Users().UpdateUser(ctx, 99999, "x", "y"), store.ErrNotFound)
}

func TestSetUserToken_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := createTestUser(t, st, "alice")

	expiresAt := time.Now().Add(24 * time.Hour).UTC()
	require.NoError(t, st.Users().SetUserToken(ctx, userID, "fingerprint-1", expiresAt))

	u, err := st.Users().GetUserByTokenHash(ctx, "fingerprint-1")
	require.NoError(t, err)
	require.Equal(t, userID, u.ID)
	require.NotNil(t, u.TokenHash)
	require.Equal(t, "fingerprint-1", *u.TokenHash)
	require.NotNil(t, u.TokenExpiresAt)
	// Expiry is stored at millisecond resolution.
	require.WithinDuration(t, expiresAt, *u.TokenExpiresAt, time.Millisecond)
}

func TestSetUserToken_ReplacesPreviousSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := createTestUser(t, st, "alice")

	expiresAt := time.Now().Add(24 * time.Hour)
	require.NoError(t, st.Users().SetUserToken(ctx, userID, "fingerprint-1", expiresAt))
	require.NoError(t, st.Users().SetUserToken(ctx, userID, "fingerprint-2", expiresAt))

	_, err := st.Users().GetUserByTokenHash(ctx, "fingerprint-1")
	require.ErrorIs(t, err, store.ErrNotFound, "old session should be replaced")

	u, err := st.Users().GetUserByTokenHash(ctx, "fingerprint-2")
	require.NoError(t, err)
	require.Equal(t, userID, u.ID)
}

func TestClearUserToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := createTestUser(t, st, "alice")

	require.NoError(t, st.Users().SetUserToken(ctx, userID, "fingerprint-1", time.Now().Add(time.Hour)))
	require.NoError(t, st.Users().ClearUserToken(ctx, userID))

	_, err := st.Users().GetUserByTokenHash(ctx, "fingerprint-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	u, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, u.TokenHash)
	require.Nil(t, u.TokenExpiresAt)

	// Clearing again is a no-op.
	require.NoError(t, st.Users().ClearUserToken(ctx, userID))
}
