package service

import (
	"context"
	"errors"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/internal/contactbook/validate"
)

type AddressService struct {
	Store store.Store
}

type CreateAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// UpdateAddressRequest replaces every mutable field of the address.
type UpdateAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

func toAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func validateAddressFields(street, city, province, country, postalCode string) error {
	var fields validate.Fields
	fields.MaxLen("street", street, 128)
	fields.MaxLen("city", city, 128)
	fields.MaxLen("province", province, 128)
	fields.Require("country", country).MaxLen("country", country, 128)
	fields.MaxLen("postalCode", postalCode, 128)
	return fields.Err()
}

// resolveContact walks the ownership chain root first: the contact must
// resolve under the caller before any address under it is touched.
func (s *AddressService) resolveContact(ctx context.Context, user domain.User, rawContactID string) (domain.Contact, error) {
	contactID, err := validate.ID("contactId", rawContactID)
	if err != nil {
		return domain.Contact{}, err
	}

	contact, err := s.Store.Contacts().GetContact(ctx, user.ID, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contact{}, ErrContactNotFound
		}
		return domain.Contact{}, err
	}
	return contact, nil
}

// Create adds an address under a contact owned by the caller.
func (s *AddressService) Create(ctx context.Context, user domain.User, rawContactID string, req CreateAddressRequest) (AddressResponse, error) {
	if err := validateAddressFields(req.Street, req.City, req.Province, req.Country, req.PostalCode); err != nil {
		return AddressResponse{}, err
	}

	contact, err := s.resolveContact(ctx, user, rawContactID)
	if err != nil {
		return AddressResponse{}, err
	}

	address := domain.Address{
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	id, err := s.Store.Addresses().CreateAddress(ctx, address)
	if err != nil {
		return AddressResponse{}, err
	}
	address.ID = id

	return toAddressResponse(address), nil
}

// Get resolves the contact under the caller, then the address under that
// contact; the address is never looked up globally by id.
func (s *AddressService) Get(ctx context.Context, user domain.User, rawContactID, rawAddressID string) (AddressResponse, error) {
	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return AddressResponse{}, err
	}

	contact, err := s.resolveContact(ctx, user, rawContactID)
	if err != nil {
		return AddressResponse{}, err
	}

	address, err := s.Store.Addresses().GetAddress(ctx, contact.ID, addressID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AddressResponse{}, ErrAddressNotFound
		}
		return AddressResponse{}, err
	}

	return toAddressResponse(address), nil
}

// Update replaces the address fields after both chain links resolve.
func (s *AddressService) Update(ctx context.Context, user domain.User, rawContactID, rawAddressID string, req UpdateAddressRequest) (AddressResponse, error) {
	if err := validateAddressFields(req.Street, req.City, req.Province, req.Country, req.PostalCode); err != nil {
		return AddressResponse{}, err
	}

	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return AddressResponse{}, err
	}

	contact, err := s.resolveContact(ctx, user, rawContactID)
	if err != nil {
		return AddressResponse{}, err
	}

	address := domain.Address{
		ID:         addressID,
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.Store.Addresses().UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AddressResponse{}, ErrAddressNotFound
		}
		return AddressResponse{}, err
	}

	return toAddressResponse(address), nil
}

// Delete removes one address under a contact owned by the caller.
func (s *AddressService) Delete(ctx context.Context, user domain.User, rawContactID, rawAddressID string) error {
	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return err
	}

	contact, err := s.resolveContact(ctx, user, rawContactID)
	if err != nil {
		return err
	}

	if err := s.Store.Addresses().DeleteAddress(ctx, contact.ID, addressID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}

	return nil
}

// List returns every address under a contact owned by the caller.
func (s *AddressService) List(ctx context.Context, user domain.User, rawContactID string) ([]AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, rawContactID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.Store.Addresses().ListAddresses(ctx, contact.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		responses = append(responses, toAddressResponse(a))
	}
	return responses, nil
}
