package http

import (
	"context"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
)

type ctxKey string

const ctxKeyUser ctxKey = "current_user"

func contextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// userFromContext returns the identity resolved by the auth middleware.
// The bool is false on routes that were not behind the middleware.
func userFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(domain.User)
	return user, ok
}
