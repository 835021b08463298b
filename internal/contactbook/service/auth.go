package service

import (
	"context"
	"errors"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/internal/contactbook/validate"
	"github.com/contactbook/contactbook/pkg/cryptox"
	"github.com/contactbook/contactbook/pkg/slogx"
)

// DefaultSessionTTL is the lifetime of a session token issued at login.
const DefaultSessionTTL = 24 * time.Hour

type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
	// ExpiredAt is epoch milliseconds.
	ExpiredAt int64 `json:"expiredAt"`
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies the credentials and issues a fresh opaque session token,
// replacing any previous session. An unknown username and a wrong password
// both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var fields validate.Fields
	fields.Require("username", req.Username).MaxLen("username", req.Username, 100)
	fields.Require("password", req.Password).MaxLen("password", req.Password, 100)
	if err := fields.Err(); err != nil {
		return TokenResponse{}, err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenResponse{}, ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	if cryptox.VerifyPassword(req.Password, user.PasswordHash) != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return TokenResponse{}, err
	}
	expiresAt := time.Now().Add(s.sessionTTL())

	if err := s.Store.Users().SetUserToken(ctx, user.ID, cryptox.FingerprintToken(token), expiresAt); err != nil {
		return TokenResponse{}, err
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", user.ID)

	return TokenResponse{
		Token:     token,
		ExpiredAt: expiresAt.UnixMilli(),
	}, nil
}

// Logout clears the session token for the resolved identity. It is
// idempotent; logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, user domain.User) error {
	return s.Store.Users().ClearUserToken(ctx, user.ID)
}

// Authenticate resolves an opaque bearer token to its user. It fails with
// ErrInvalidToken when the token is empty, unknown, or expired; the failure
// does not reveal which. It is read-only and never extends the expiry.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	if !user.HasActiveToken(time.Now()) {
		return domain.User{}, ErrInvalidToken
	}

	return user, nil
}
