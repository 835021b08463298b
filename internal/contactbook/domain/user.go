package domain

import "time"

// User is an account identity. PasswordHash is an Argon2id PHC string and is
// never serialized to clients. TokenHash and TokenExpiresAt are both nil when
// the user has no active session, and both set while one exists.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string

	TokenHash      *string
	TokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasActiveToken reports whether the user holds a session token that has not
// expired at the given instant.
func (u User) HasActiveToken(now time.Time) bool {
	return u.TokenHash != nil && u.TokenExpiresAt != nil && u.TokenExpiresAt.After(now)
}
