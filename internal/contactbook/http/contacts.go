package http

import (
	"net/http"
	"strconv"

	"github.com/contactbook/contactbook/internal/contactbook/service"
)

type ContactHandler struct {
	ContactService *service.ContactService
}

// HandleCreate godoc
//
//	@Summary		Create a contact
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Param			X-API-TOKEN	header		string							true	"Session token"
//	@Param			request		body		service.CreateContactRequest	true	"New contact"
//	@Success		200			{object}	WebResponse						"data: the created contact"
//	@Failure		400			{object}	WebResponse						"errors: constraint violations"
//	@Failure		401			{object}	WebResponse						"errors: Unauthorized"
//	@Router			/api/contacts [post].
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req service.CreateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.ContactService.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get a contact
//	@Tags			Contacts
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			contactId	path		int			true	"Contact id"
//	@Success		200			{object}	WebResponse	"data: the contact"
//	@Failure		400			{object}	WebResponse	"errors: invalid contact id"
//	@Failure		404			{object}	WebResponse	"errors: Contact is not found"
//	@Router			/api/contacts/{contactId} [get].
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	resp, err := h.ContactService.Get(r.Context(), user, r.PathValue("contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleUpdate godoc
//
//	@Summary		Update a contact
//	@Description	Replaces every mutable field of the contact.
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Param			X-API-TOKEN	header		string							true	"Session token"
//	@Param			contactId	path		int								true	"Contact id"
//	@Param			request		body		service.UpdateContactRequest	true	"New field values"
//	@Success		200			{object}	WebResponse						"data: the updated contact"
//	@Failure		400			{object}	WebResponse						"errors: constraint violations"
//	@Failure		404			{object}	WebResponse						"errors: Contact is not found"
//	@Router			/api/contacts/{contactId} [put].
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req service.UpdateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.ContactService.Update(r.Context(), user, r.PathValue("contactId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleDelete godoc
//
//	@Summary		Delete a contact
//	@Description	Removes the contact and every address under it atomically.
//	@Tags			Contacts
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			contactId	path		int			true	"Contact id"
//	@Success		200			{object}	WebResponse	"data: OK"
//	@Failure		400			{object}	WebResponse	"errors: invalid contact id"
//	@Failure		404			{object}	WebResponse	"errors: Contact is not found"
//	@Router			/api/contacts/{contactId} [delete].
func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.ContactService.Delete(r.Context(), user, r.PathValue("contactId")); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}

// HandleSearch godoc
//
//	@Summary		Search contacts
//	@Description	Returns one page of the caller's contacts. Filters (name, email, phone) are substring matches ANDed together.
//	@Tags			Contacts
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			name		query		string		false	"Matches first or last name"
//	@Param			email		query		string		false	"Matches email"
//	@Param			phone		query		string		false	"Matches phone"
//	@Param			page		query		int			false	"Zero-based page index"	default(0)
//	@Param			size		query		int			false	"Page size"				default(10)
//	@Success		200			{object}	WebResponse	"data: contacts, paging: currentPage/totalPage/size"
//	@Failure		401			{object}	WebResponse	"errors: Unauthorized"
//	@Router			/api/contacts [get].
func (h *ContactHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	query := r.URL.Query()
	req := service.SearchContactsRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  queryInt(query.Get("page"), 0),
		Size:  queryInt(query.Get("size"), service.DefaultPageSize),
	}

	page, err := h.ContactService.Search(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, page.Contacts, Paging{
		CurrentPage: page.CurrentPage,
		TotalPage:   page.TotalPage,
		Size:        page.Size,
	})
}

// queryInt parses an optional numeric query parameter, falling back to the
// default on absent or unparseable values.
func queryInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
