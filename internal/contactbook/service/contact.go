package service

import (
	"context"
	"errors"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/internal/contactbook/validate"
)

const (
	// DefaultPageSize is the search page size when none is requested.
	DefaultPageSize = 10
)

type ContactService struct {
	Store store.Store
}

type CreateContactRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateContactRequest replaces every mutable field of the contact.
type UpdateContactRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type SearchContactsRequest struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

type ContactPageResponse struct {
	Contacts    []ContactResponse
	CurrentPage int
	TotalPage   int
	Size        int
}

func toContactResponse(c domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func validateContactFields(firstName, lastName, email, phone string) error {
	var fields validate.Fields
	fields.Require("firstname", firstName).MaxLen("firstname", firstName, 128)
	fields.MaxLen("lastname", lastName, 128)
	fields.Email("email", email).MaxLen("email", email, 128)
	fields.MaxLen("phone", phone, 128)
	return fields.Err()
}

// Create attaches a new contact to the caller. No ownership check is needed;
// the contact does not exist yet.
func (s *ContactService) Create(ctx context.Context, user domain.User, req CreateContactRequest) (ContactResponse, error) {
	if err := validateContactFields(req.FirstName, req.LastName, req.Email, req.Phone); err != nil {
		return ContactResponse{}, err
	}

	contact := domain.Contact{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	id, err := s.Store.Contacts().CreateContact(ctx, contact)
	if err != nil {
		return ContactResponse{}, err
	}
	contact.ID = id

	return toContactResponse(contact), nil
}

// Get resolves (caller, id) in one ownership-scoped lookup.
func (s *ContactService) Get(ctx context.Context, user domain.User, rawContactID string) (ContactResponse, error) {
	contactID, err := validate.ID("contactId", rawContactID)
	if err != nil {
		return ContactResponse{}, err
	}

	contact, err := s.Store.Contacts().GetContact(ctx, user.ID, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ContactResponse{}, ErrContactNotFound
		}
		return ContactResponse{}, err
	}

	return toContactResponse(contact), nil
}

// Update replaces the contact's fields. The update statement itself is
// ownership-scoped, so a foreign or missing id fails as not-found without a
// separate existence probe.
func (s *ContactService) Update(ctx context.Context, user domain.User, rawContactID string, req UpdateContactRequest) (ContactResponse, error) {
	if err := validateContactFields(req.FirstName, req.LastName, req.Email, req.Phone); err != nil {
		return ContactResponse{}, err
	}

	contactID, err := validate.ID("contactId", rawContactID)
	if err != nil {
		return ContactResponse{}, err
	}

	contact := domain.Contact{
		ID:        contactID,
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.Store.Contacts().UpdateContact(ctx, contact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ContactResponse{}, ErrContactNotFound
		}
		return ContactResponse{}, err
	}

	return toContactResponse(contact), nil
}

// Delete removes the contact and its addresses in one transaction: children
// first, then the parent. Either both land or neither does.
func (s *ContactService) Delete(ctx context.Context, user domain.User, rawContactID string) error {
	contactID, err := validate.ID("contactId", rawContactID)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Contacts().GetContact(ctx, user.ID, contactID); err != nil {
			return err
		}
		if err := tx.Addresses().DeleteAddressesByContact(ctx, contactID); err != nil {
			return err
		}
		return tx.Contacts().DeleteContact(ctx, user.ID, contactID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}

	return nil
}

// Search returns one page of the caller's contacts matching the filter.
// Requesting a page past the end returns an empty list with the correct
// total-page count and echoes the requested page.
func (s *ContactService) Search(ctx context.Context, user domain.User, req SearchContactsRequest) (ContactPageResponse, error) {
	filter := domain.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size < 1 {
		filter.Size = DefaultPageSize
	}

	contacts, total, err := s.Store.Contacts().SearchContacts(ctx, user.ID, filter)
	if err != nil {
		return ContactPageResponse{}, err
	}

	responses := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, toContactResponse(c))
	}

	totalPage := int((total + int64(filter.Size) - 1) / int64(filter.Size))

	return ContactPageResponse{
		Contacts:    responses,
		CurrentPage: filter.Page,
		TotalPage:   totalPage,
		Size:        filter.Size,
	}, nil
}
