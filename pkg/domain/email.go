package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New() //nolint: gochecknoglobals

// Email is a trimmed, lowercased and syntactically valid address.
type Email string

// NewEmail normalizes raw and validates it.
func NewEmail(raw string) (Email, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || len(s) > 254 {
		return "", ErrEmailInvalid
	}
	if err := validate.Var(s, "email"); err != nil {
		return "", ErrEmailInvalid
	}

	return Email(s), nil
}

func (e Email) String() string { return string(e) }
