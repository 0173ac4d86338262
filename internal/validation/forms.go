// Package validation checks signup and login form input before anything is
// hashed, compared or persisted. Required-field presence is checked first,
// field by field, so a missing field always reports as missing rather than
// as a format violation. Format rules only run once every field is present.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignupForm struct {
	Username string `form:"username" validate:"min=3"`
	Email    string `form:"email" validate:"email"`
	Password string `form:"password" validate:"min=6"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"email"`
	Password string `form:"password" validate:"min=6"`
}

// Validate checks a signup submission. It returns nil when the form is
// valid, otherwise a single error describing the first rule violated.
func (f SignupForm) Validate() error {
	required := []struct{ name, value string }{
		{"Username", f.Username},
		{"Email", f.Email},
		{"Password", f.Password},
	}
	if err := checkRequired(required); err != nil {
		return err
	}
	return checkFormat(f)
}

// Validate validates a login submission with the same two-phase order as
// signup: presence of email and password first, then format.
func (f LoginForm) Validate() error {
	required := []struct{ name, value string }{
		{"Email", f.Email},
		{"Password", f.Password},
	}
	if err := checkRequired(required); err != nil {
		return err
	}
	return checkFormat(f)
}

func checkRequired(fields []struct{ name, value string }) error {
	for _, fld := range fields {
		if strings.TrimSpace(fld.value) == "" {
			return fmt.Errorf("%s is required.", fld.name)
		}
	}
	return nil
}

func checkFormat(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(message(verrs[0]))
	}
	return errors.New("Validation error.")
}

// message turns the first field error into the text rendered on the form.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fe.Field(), fe.Param())
	case "email":
		return "Email must be a valid email address."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
