package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, password_hash, name, token_hash, token_expires_at, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		tokenHash sql.NullString
		expiresAt sql.NullInt64
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Name,
		&tokenHash,
		&expiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.TokenHash = mapNullStringPtr(tokenHash)
	u.TokenExpiresAt = mapNullMillisPtr(expiresAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Name, now, now,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *usersRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE token_hash = ?`, tokenHash))
}

func (r *usersRepo) UpdateUser(ctx context.Context, userID int64, name, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, password_hash = ?, updated_at = ? WHERE id = ?`,
		name, passwordHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *usersRepo) SetUserToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET token_hash = ?, token_expires_at = ?, updated_at = ? WHERE id = ?`,
		tokenHash, expiresAt.UnixMilli(), time.Now().UTC(), userID,
	)
	return err
}

func (r *usersRepo) ClearUserToken(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET token_hash = NULL, token_expires_at = NULL, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}
