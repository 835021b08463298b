package domain

import "time"

// Contact is owned by exactly one user. Every lookup of a contact is scoped
// by (owner, id) in a single query; a contact is never resolved by id alone.
type Contact struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactFilter is the fixed set of optional search clauses. All present
// clauses are ANDed together; Name matches first or last name as a substring.
type ContactFilter struct {
	Name  string
	Email string
	Phone string

	// Page is zero-based. Size is the page size.
	Page int
	Size int
}

// ContactPage is one page of search results plus the derived page count.
type ContactPage struct {
	Contacts    []Contact
	CurrentPage int
	TotalPage   int
	Size        int
}
