package auth

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"groupchat/errors"
)

var validate = validator.New()

// Credentials carries a registration or login request before it reaches the
// store. The credential store never re-validates content, only uniqueness,
// so every format rule lives here.
type Credentials struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=4"`
}

// ValidateCredentials applies the structural rules plus the characters the
// flat record format cannot carry: the field delimiter, and spaces inside
// usernames.
func ValidateCredentials(c Credentials) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	// The '|' check is done by hand: it is the record delimiter of every
	// backing store and must never reach a persisted field.
	if strings.Contains(c.Username, "|") || strings.Contains(c.Password, "|") {
		return fmt.Errorf("%w: username and password cannot contain '|'", errors.ErrValidation)
	}
	if strings.Contains(c.Username, " ") {
		return fmt.Errorf("%w: username cannot contain spaces", errors.ErrValidation)
	}
	return nil
}
