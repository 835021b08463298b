package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
)

type addressesRepo struct {
	db dbtx
}

const addressColumns = `id, contact_id, street, city, province, country, postal_code, created_at, updated_at`

func scanAddress(row *sql.Row) (domain.Address, error) {
	var a domain.Address
	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.Street,
		&a.City,
		&a.Province,
		&a.Country,
		&a.PostalCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Address{}, mapNotFound(err)
	}
	return a, nil
}

func (r *addressesRepo) CreateAddress(ctx context.Context, a domain.Address) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO addresses (contact_id, street, city, province, country, postal_code, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *addressesRepo) GetAddress(ctx context.Context, contactID, addressID int64) (domain.Address, error) {
	return scanAddress(r.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE contact_id = ? AND id = ?`,
		contactID, addressID))
}

func (r *addressesRepo) UpdateAddress(ctx context.Context, a domain.Address) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ?, updated_at = ?
		 WHERE contact_id = ? AND id = ?`,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, time.Now().UTC(), a.ContactID, a.ID,
	)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *addressesRepo) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE contact_id = ? AND id = ?`, contactID, addressID)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *addressesRepo) ListAddresses(ctx context.Context, contactID int64) ([]domain.Address, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE contact_id = ? ORDER BY id`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID,
			&a.ContactID,
			&a.Street,
			&a.City,
			&a.Province,
			&a.Country,
			&a.PostalCode,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressesRepo) DeleteAddressesByContact(ctx context.Context, contactID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE contact_id = ?`, contactID)
	return err
}
