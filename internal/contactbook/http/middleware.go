package http

import (
	"net/http"

	"github.com/contactbook/contactbook/internal/contactbook/service"
	"github.com/contactbook/contactbook/pkg/httpx"
	"github.com/contactbook/contactbook/pkg/slogx"
)

// TokenHeader is the fixed request header carrying the opaque session token.
const TokenHeader = "X-API-TOKEN"

// AuthnMiddleware resolves the session token to a user before any handler
// runs. An absent, unknown, or expired token rejects the request identically;
// on failure nothing downstream executes. The resolved identity is threaded
// through the request context, never through ambient state.
func AuthnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := auth.Authenticate(ctx, r.Header.Get(TokenHeader))
			if err != nil {
				writeError(w, r, err)
				return
			}

			slogx.FromContext(ctx).Debug("authenticated", "user_id", user.ID)

			ctx = contextWithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
