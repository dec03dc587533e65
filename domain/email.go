package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"minislack/errors"
)

var validate = validator.New()

// Email is a validated, lowercase e-mail address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Email{}, errors.InvalidArgumentf("email must not be blank")
	}
	if err := validate.Var(v, "email"); err != nil {
		return Email{}, errors.InvalidArgumentf("email %q is malformed", raw)
	}
	return Email{value: strings.ToLower(v)}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }
