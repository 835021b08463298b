package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("wrong username or password")

	// ErrInvalidToken covers a missing, unknown, and expired session token.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrUsernameTaken reports a registration conflict.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrContactNotFound reports an ownership-chain miss: the contact id does
	// not exist or belongs to another user. The two cases surface identically.
	ErrContactNotFound = errors.New("contact is not found")

	// ErrAddressNotFound reports an ownership-chain miss under a resolved
	// contact.
	ErrAddressNotFound = errors.New("address is not found")
)
