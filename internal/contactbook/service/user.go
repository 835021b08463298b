package service

import (
	"context"
	"errors"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/internal/contactbook/validate"
	"github.com/contactbook/contactbook/pkg/cryptox"
	"github.com/contactbook/contactbook/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type UpdateUserRequest struct {
	// Nil fields are left unchanged.
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UserResponse never carries the password in any form.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Register creates a new account. The username must be unused; the password
// is stored only as an Argon2id hash.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) error {
	var fields validate.Fields
	fields.Require("username", req.Username).MaxLen("username", req.Username, 100)
	fields.Require("password", req.Password).MaxLen("password", req.Password, 100)
	fields.Require("name", req.Name).MaxLen("name", req.Name, 100)
	if err := fields.Err(); err != nil {
		return err
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, req.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return err
	}

	userID, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
	})
	if err != nil {
		// The unique index backstops the pre-check under concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrUsernameTaken
		}
		return err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", userID)
	return nil
}

// Get shapes the current user for the client.
func (s *UserService) Get(user domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// Update changes the caller's name and/or password. Only provided fields
// change; the password is re-hashed when present.
func (s *UserService) Update(ctx context.Context, user domain.User, req UpdateUserRequest) (UserResponse, error) {
	var fields validate.Fields
	if req.Name != nil {
		fields.Require("name", *req.Name).MaxLen("name", *req.Name, 100)
	}
	if req.Password != nil {
		fields.Require("password", *req.Password).MaxLen("password", *req.Password, 100)
	}
	if err := fields.Err(); err != nil {
		return UserResponse{}, err
	}

	name := user.Name
	if req.Name != nil {
		name = *req.Name
	}

	passwordHash := user.PasswordHash
	if req.Password != nil {
		hash, err := cryptox.HashPassword(*req.Password)
		if err != nil {
			return UserResponse{}, err
		}
		passwordHash = hash
	}

	if err := s.Store.Users().UpdateUser(ctx, user.ID, name, passwordHash); err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		Username: user.Username,
		Name:     name,
	}, nil
}
