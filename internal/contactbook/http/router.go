package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/service"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/pkg/httpx"
	"github.com/contactbook/contactbook/pkg/slogx"

	_ "github.com/contactbook/contactbook/api/contactbook" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router owns the HTTP mux and wires every endpoint to its handler with
// the middleware stack it needs.
type Router struct {
	Mux *http.ServeMux

	Logger  *slog.Logger
	Store   store.Store
	Version string

	Auth     *service.AuthService
	Users    *service.UserService
	Contacts *service.ContactService
	Address  *service.AddressService

	startTime time.Time
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.Mux.ServeHTTP(w, r)
}

func NewRouter(logger *slog.Logger, st store.Store, version string) *Router {
	return &Router{
		Mux:       http.NewServeMux(),
		Logger:    logger,
		Store:     st,
		Version:   version,
		startTime: time.Now(),
	}
}

// ApplyRoutes registers every route on the mux. Unauthenticated endpoints
// carry a strict per-IP rate limit; authenticated ones a lenient one behind
// token resolution.
func (rt *Router) ApplyRoutes() {
	authHandler := &AuthHandler{AuthService: rt.Auth}
	userHandler := &UserHandler{UserService: rt.Users}
	contactHandler := &ContactHandler{ContactService: rt.Contacts}
	addressHandler := &AddressHandler{AddressService: rt.Address}

	open := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			slogx.HTTPMiddleware(rt.Logger),
			httpx.RateLimitByIP(httpx.StrictLimit),
		)
	}
	authed := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			slogx.HTTPMiddleware(rt.Logger),
			httpx.RateLimitByIP(httpx.LenientLimit),
			AuthnMiddleware(rt.Auth),
		)
	}

	rt.Mux.Handle("POST /api/users", open(http.HandlerFunc(userHandler.HandleRegister)))
	rt.Mux.Handle("POST /api/auth/login", open(http.HandlerFunc(authHandler.HandleLogin)))

	rt.Mux.Handle("DELETE /api/auth/logout", authed(http.HandlerFunc(authHandler.HandleLogout)))
	rt.Mux.Handle("GET /api/users/current", authed(http.HandlerFunc(userHandler.HandleGetCurrent)))
	rt.Mux.Handle("PATCH /api/users/current", authed(http.HandlerFunc(userHandler.HandleUpdateCurrent)))

	rt.Mux.Handle("POST /api/contacts", authed(http.HandlerFunc(contactHandler.HandleCreate)))
	rt.Mux.Handle("GET /api/contacts", authed(http.HandlerFunc(contactHandler.HandleSearch)))
	rt.Mux.Handle("GET /api/contacts/{contactId}", authed(http.HandlerFunc(contactHandler.HandleGet)))
	rt.Mux.Handle("PUT /api/contacts/{contactId}", authed(http.HandlerFunc(contactHandler.HandleUpdate)))
	rt.Mux.Handle("DELETE /api/contacts/{contactId}", authed(http.HandlerFunc(contactHandler.HandleDelete)))

	rt.Mux.Handle("POST /api/contacts/{contactId}/addresses", authed(http.HandlerFunc(addressHandler.HandleCreate)))
	rt.Mux.Handle("GET /api/contacts/{contactId}/addresses", authed(http.HandlerFunc(addressHandler.HandleList)))
	rt.Mux.Handle("GET /api/contacts/{contactId}/addresses/{addressId}", authed(http.HandlerFunc(addressHandler.HandleGet)))
	rt.Mux.Handle("PUT /api/contacts/{contactId}/addresses/{addressId}", authed(http.HandlerFunc(addressHandler.HandleUpdate)))
	rt.Mux.Handle("DELETE /api/contacts/{contactId}/addresses/{addressId}", authed(http.HandlerFunc(addressHandler.HandleDelete)))

	rt.Mux.Handle("GET /livez", LivezHandler(rt.startTime, rt.Version))
	rt.Mux.Handle("GET /readyz", ReadyzHandler(rt.startTime, rt.Version, rt.Store))

	rt.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}
