package domain

import "time"

// Address belongs to exactly one contact. Address lookups are scoped by
// (contact, id) under a contact that already resolved for the caller.
type Address struct {
	ID         int64
	ContactID  int64
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}
