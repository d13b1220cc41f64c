// Package validation checks user drafts before they are submitted.
// A draft with field errors never reaches the network.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError is a single client-side validation failure, shown inline
// next to the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks the fields of a user draft. It returns one error
// per failing field, or nil when the draft may be submitted.
func ValidateDraft(u models.User) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(u.FirstName) == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "first name is required"})
	}
	if strings.TrimSpace(u.LastName) == "" {
		errs = append(errs, FieldError{Field: "last_name", Message: "last name is required"})
	}
	switch email := strings.TrimSpace(u.Email); {
	case email == "":
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	case !emailRegex.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Message: "email is not valid"})
	}
	return errs
}

// ValidateCredentials checks a login form.
func ValidateCredentials(c models.Credentials) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if c.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}
