package http

import (
	"net/http"

	"github.com/contactbook/contactbook/internal/contactbook/service"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account. The username must be unused.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.RegisterUserRequest	true	"New account"
//	@Success		200		{object}	WebResponse					"data: OK"
//	@Failure		400		{object}	WebResponse					"errors: constraint violations"
//	@Failure		409		{object}	WebResponse					"errors: Username already registered"
//	@Router			/api/users [post].
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.UserService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}

// HandleGetCurrent godoc
//
//	@Summary		Get the current user
//	@Tags			Users
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Success		200			{object}	WebResponse	"data: username and name"
//	@Failure		401			{object}	WebResponse	"errors: Unauthorized"
//	@Router			/api/users/current [get].
func (h *UserHandler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	writeData(w, http.StatusOK, h.UserService.Get(user))
}

// HandleUpdateCurrent godoc
//
//	@Summary		Update the current user
//	@Description	Changes name and/or password; absent fields stay unchanged.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			X-API-TOKEN	header		string						true	"Session token"
//	@Param			request		body		service.UpdateUserRequest	true	"Fields to change"
//	@Success		200			{object}	WebResponse					"data: username and name"
//	@Failure		400			{object}	WebResponse					"errors: constraint violations"
//	@Failure		401			{object}	WebResponse					"errors: Unauthorized"
//	@Router			/api/users/current [patch].
func (h *UserHandler) HandleUpdateCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req service.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.UserService.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}
