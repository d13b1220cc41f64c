package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedOperator ensures an operator account with the given email and
// password exists so the admin client has someone to log in as. An
// existing account with that email is left untouched.
func SeedOperator(db *sql.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash operator password: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO users (id, first_name, last_name, email, avatar, password_hash)
		 VALUES ($1, 'Eve', 'Holt', $2, '', $3)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), email, string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}
	return nil
}
