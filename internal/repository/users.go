// Package repository provides the Postgres persistence layer for the
// user directory.
package repository

import (
	"context"
	"database/sql"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// PostgresUserRepository implements user persistence against Postgres.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a repository bound to db.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// List returns up to limit users in insertion order.
func (r *PostgresUserRepository) List(ctx context.Context, limit int) ([]models.User, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, first_name, last_name, email, avatar FROM users ORDER BY seq LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Avatar); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a new user record.
func (r *PostgresUserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, first_name, last_name, email, avatar) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Avatar,
	)
	return err
}

// Update applies the non-empty fields of patch to the record with the
// given id and returns the resulting record. sql.ErrNoRows is returned
// when no record matches.
func (r *PostgresUserRepository) Update(ctx context.Context, id string, patch models.User) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`UPDATE users SET
		    first_name = COALESCE(NULLIF($2, ''), first_name),
		    last_name  = COALESCE(NULLIF($3, ''), last_name),
		    email      = COALESCE(NULLIF($4, ''), email),
		    avatar     = COALESCE(NULLIF($5, ''), avatar)
		 WHERE id = $1
		 RETURNING id, first_name, last_name, email, avatar`,
		id, patch.FirstName, patch.LastName, patch.Email, patch.Avatar,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Avatar)
	return u, err
}

// Delete removes the record with the given id. Deleting an absent id
// is not an error.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// CredentialsByEmail returns the id and password hash for the account
// with the given email. sql.ErrNoRows is returned when no account
// matches or the account has no password set.
func (r *PostgresUserRepository) CredentialsByEmail(ctx context.Context, email string) (string, string, error) {
	var id string
	var hash sql.NullString
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&id, &hash)
	if err != nil {
		return "", "", err
	}
	if !hash.Valid {
		return "", "", sql.ErrNoRows
	}
	return id, hash.String, nil
}
