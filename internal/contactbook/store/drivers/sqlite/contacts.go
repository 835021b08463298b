package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
)

type contactsRepo struct {
	db dbtx
}

const contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

func scanContact(row *sql.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Contact{}, mapNotFound(err)
	}
	return c, nil
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (user_id, first_name, last_name, email, phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.UserID, c.FirstName, c.LastName, c.Email, c.Phone, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *contactsRepo) GetContact(ctx context.Context, userID, contactID int64) (domain.Contact, error) {
	return scanContact(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE user_id = ? AND id = ?`,
		userID, contactID))
}

func (r *contactsRepo) UpdateContact(ctx context.Context, c domain.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		c.FirstName, c.LastName, c.Email, c.Phone, time.Now().UTC(), c.UserID, c.ID,
	)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *contactsRepo) DeleteContact(ctx context.Context, userID, contactID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE user_id = ? AND id = ?`, userID, contactID)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

// SearchContacts composes the fixed set of optional clauses: the owner scope
// is always present, name matches first or last name as a substring, and all
// present filters are ANDed.
func (r *contactsRepo) SearchContacts(
	ctx context.Context,
	userID int64,
	filter domain.ContactFilter,
) ([]domain.Contact, int64, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}

	if filter.Name != "" {
		where = append(where, "(first_name LIKE ? OR last_name LIKE ?)")
		needle := "%" + filter.Name + "%"
		args = append(args, needle, needle)
	}
	if filter.Email != "" {
		where = append(where, "email LIKE ?")
		args = append(args, "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		where = append(where, "phone LIKE ?")
		args = append(args, "%"+filter.Phone+"%")
	}

	clause := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE `+clause, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	pageArgs := append(args, filter.Size, filter.Page*filter.Size)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE `+clause+` ORDER BY id LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
