package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/internal/contactbook/store/drivers/sqlite"
	"github.com/contactbook/contactbook/pkg/cryptox"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file; keep it out of the repo tree.
	pepperPath := filepath.Join(os.TempDir(), "contactbook-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// registerTestUser registers via the service so the password hash is real,
// then returns the stored user.
func registerTestUser(t *testing.T, st store.Store, username, password string) domain.User {
	t.Helper()

	users := &UserService{Store: st}
	require.NoError(t, users.Register(context.Background(), RegisterUserRequest{
		Username: username,
		Password: password,
		Name:     "Test " + username,
	}))

	user, err := st.Users().GetUserByUsername(context.Background(), username)
	require.NoError(t, err)
	return user
}
