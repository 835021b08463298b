package store

import (
	"context"
	"errors"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Contacts() Contacts
	Addresses() Addresses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the generated id.
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByTokenHash resolves a session token fingerprint to its user.
	// Users without an active token never match.
	GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error)

	// UpdateUser mutates name and password_hash and bumps updated_at.
	UpdateUser(ctx context.Context, userID int64, name, passwordHash string) error

	// SetUserToken stores a new session token fingerprint and expiry,
	// replacing any previous session.
	SetUserToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// ClearUserToken removes the session token; a no-op if none is set.
	ClearUserToken(ctx context.Context, userID int64) error

	// DeleteUser removes a user; contacts and addresses cascade per schema.
	DeleteUser(ctx context.Context, userID int64) error
}

type Contacts interface {
	// CreateContact inserts a new contact owned by c.UserID and returns the
	// generated id.
	CreateContact(ctx context.Context, c domain.Contact) (int64, error)

	// GetContact resolves (owner, id) in one query. Returns ErrNotFound when
	// the id does not exist or belongs to another user; the two cases are
	// indistinguishable to the caller.
	GetContact(ctx context.Context, userID, contactID int64) (domain.Contact, error)

	// UpdateContact replaces the mutable columns of (owner, id).
	UpdateContact(ctx context.Context, c domain.Contact) error

	// DeleteContact removes (owner, id).
	DeleteContact(ctx context.Context, userID, contactID int64) error

	// SearchContacts returns one page of the owner's contacts matching the
	// filter, plus the total number of matching rows.
	SearchContacts(ctx context.Context, userID int64, filter domain.ContactFilter) ([]domain.Contact, int64, error)
}

type Addresses interface {
	// CreateAddress inserts a new address under a.ContactID and returns the
	// generated id.
	CreateAddress(ctx context.Context, a domain.Address) (int64, error)

	// GetAddress resolves (contact, id) in one query; never by address id
	// alone.
	GetAddress(ctx context.Context, contactID, addressID int64) (domain.Address, error)

	// UpdateAddress replaces the mutable columns of (contact, id).
	UpdateAddress(ctx context.Context, a domain.Address) error

	// DeleteAddress removes (contact, id).
	DeleteAddress(ctx context.Context, contactID, addressID int64) error

	// ListAddresses returns all addresses under a contact.
	ListAddresses(ctx context.Context, contactID int64) ([]domain.Address, error)

	// DeleteAddressesByContact removes every address under a contact. Used by
	// the explicit two-step contact delete inside a transaction.
	DeleteAddressesByContact(ctx context.Context, contactID int64) error
}
