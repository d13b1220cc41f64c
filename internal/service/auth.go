// Package service provides the directory's business logic, delegating
// persistence to repositories.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken is returned when a presented token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// CredentialsRepository looks up stored login credentials.
type CredentialsRepository interface {
	// CredentialsByEmail returns the account id and password hash for
	// the given email, or sql.ErrNoRows when no such account exists.
	CredentialsByEmail(ctx context.Context, email string) (string, string, error)
}

// claims carries the standard claims plus the account id.
type claims struct {
	jwt.RegisteredClaims
	UserID string
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	repo     CredentialsRepository
	secret   []byte
	validity time.Duration
}

// NewAuthService constructs an AuthService signing tokens with secret,
// valid for validity.
func NewAuthService(repo CredentialsRepository, secret []byte, validity time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, validity: validity}
}

// Login checks the credentials and returns a signed token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	id, hash, err := s.repo.CredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
		},
		UserID: id,
	})
	return token.SignedString(s.secret)
}

// Verify parses a bearer token and returns the account id it was
// issued for.
func (s *AuthService) Verify(tokenString string) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return c.UserID, nil
}
