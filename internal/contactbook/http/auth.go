package http

import (
	"net/http"

	"github.com/contactbook/contactbook/internal/contactbook/service"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies the credentials and issues a fresh opaque session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.LoginRequest	true	"Credentials"
//	@Success		200		{object}	WebResponse				"data: token and expiredAt (epoch ms)"
//	@Failure		400		{object}	WebResponse				"errors: constraint violations"
//	@Failure		401		{object}	WebResponse				"errors: Wrong username or password"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, token)
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clears the caller's session token. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Success		200			{object}	WebResponse	"data: OK"
//	@Failure		401			{object}	WebResponse	"errors: Unauthorized"
//	@Router			/api/auth/logout [delete].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.AuthService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}
