package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/contactbook/contactbook/internal/contactbook/service"
	"github.com/contactbook/contactbook/internal/contactbook/validate"
	"github.com/contactbook/contactbook/pkg/httpx"
	"github.com/contactbook/contactbook/pkg/slogx"
)

// WebResponse is the envelope every endpoint answers with. Exactly one of
// Data and Errors is present; Paging appears only on search results.
type WebResponse struct {
	Data   any     `json:"data,omitempty"`
	Errors any     `json:"errors,omitempty"`
	Paging *Paging `json:"paging,omitempty"`
}

type Paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

func writeData(w http.ResponseWriter, code int, data any) {
	httpx.WriteJSON(w, code, WebResponse{Data: data})
}

func writePage(w http.ResponseWriter, data any, paging Paging) {
	httpx.WriteJSON(w, http.StatusOK, WebResponse{Data: data, Paging: &paging})
}

// writeError translates service-layer failures into the envelope. Anything
// not in the taxonomy is logged and surfaced as a generic internal error so
// storage details never leak to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validate.Error

	switch {
	case errors.As(err, &vErr):
		httpx.WriteJSON(w, http.StatusBadRequest, WebResponse{Errors: vErr.Violations})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, WebResponse{Errors: "Wrong username or password"})
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteJSON(w, http.StatusUnauthorized, WebResponse{Errors: "Unauthorized"})
	case errors.Is(err, service.ErrContactNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, WebResponse{Errors: "Contact is not found"})
	case errors.Is(err, service.ErrAddressNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, WebResponse{Errors: "Address is not found"})
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteJSON(w, http.StatusConflict, WebResponse{Errors: "Username already registered"})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, WebResponse{Errors: "Internal server error"})
	}
}

// decodeJSON decodes a request body, reporting failure through the envelope.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, WebResponse{Errors: "Invalid request body"})
		return false
	}
	return true
}
