package http

import (
	"net/http"

	"github.com/contactbook/contactbook/internal/contactbook/service"
)

type AddressHandler struct {
	AddressService *service.AddressService
}

// HandleCreate godoc
//
//	@Summary		Create an address
//	@Description	Adds an address under a contact owned by the caller.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			X-API-TOKEN	header		string							true	"Session token"
//	@Param			contactId	path		int								true	"Contact id"
//	@Param			request		body		service.CreateAddressRequest	true	"New address"
//	@Success		200			{object}	WebResponse						"data: the created address"
//	@Failure		400			{object}	WebResponse						"errors: constraint violations"
//	@Failure		404			{object}	WebResponse						"errors: Contact is not found"
//	@Router			/api/contacts/{contactId}/addresses [post].
func (h *AddressHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req service.CreateAddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.AddressService.Create(r.Context(), user, r.PathValue("contactId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get an address
//	@Tags			Addresses
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			contactId	path		int			true	"Contact id"
//	@Param			addressId	path		int			true	"Address id"
//	@Success		200			{object}	WebResponse	"data: the address"
//	@Failure		400			{object}	WebResponse	"errors: invalid ids"
//	@Failure		404			{object}	WebResponse	"errors: Contact/Address is not found"
//	@Router			/api/contacts/{contactId}/addresses/{addressId} [get].
func (h *AddressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	resp, err := h.AddressService.Get(r.Context(), user, r.PathValue("contactId"), r.PathValue("addressId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleUpdate godoc
//
//	@Summary		Update an address
//	@Description	Replaces every mutable field of the address.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			X-API-TOKEN	header		string							true	"Session token"
//	@Param			contactId	path		int								true	"Contact id"
//	@Param			addressId	path		int								true	"Address id"
//	@Param			request		body		service.UpdateAddressRequest	true	"New field values"
//	@Success		200			{object}	WebResponse						"data: the updated address"
//	@Failure		400			{object}	WebResponse						"errors: constraint violations"
//	@Failure		404			{object}	WebResponse						"errors: Contact/Address is not found"
//	@Router			/api/contacts/{contactId}/addresses/{addressId} [put].
func (h *AddressHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	var req service.UpdateAddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.AddressService.Update(r.Context(), user, r.PathValue("contactId"), r.PathValue("addressId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleDelete godoc
//
//	@Summary		Delete an address
//	@Tags			Addresses
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			contactId	path		int			true	"Contact id"
//	@Param			addressId	path		int			true	"Address id"
//	@Success		200			{object}	WebResponse	"data: OK"
//	@Failure		400			{object}	WebResponse	"errors: invalid ids"
//	@Failure		404			{object}	WebResponse	"errors: Contact/Address is not found"
//	@Router			/api/contacts/{contactId}/addresses/{addressId} [delete].
func (h *AddressHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.AddressService.Delete(r.Context(), user, r.PathValue("contactId"), r.PathValue("addressId")); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}

// HandleList godoc
//
//	@Summary		List addresses
//	@Description	Returns every address under a contact owned by the caller.
//	@Tags			Addresses
//	@Produce		json
//	@Param			X-API-TOKEN	header		string		true	"Session token"
//	@Param			contactId	path		int			true	"Contact id"
//	@Success		200			{object}	WebResponse	"data: addresses"
//	@Failure		400			{object}	WebResponse	"errors: invalid contact id"
//	@Failure		404			{object}	WebResponse	"errors: Contact is not found"
//	@Router			/api/contacts/{contactId}/addresses [get].
func (h *AddressHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	resp, err := h.AddressService.List(r.Context(), user, r.PathValue("contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp)
}
