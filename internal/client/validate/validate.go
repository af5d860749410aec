// Package validate checks the shape of user-entered form data before it
// reaches the session manager. All checks are pure; messages come from the
// i18n catalogue.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/stackguard/internal/i18n"
)

const (
	MinPasswordLength  = 6
	MinConfigKeyLength = 100
	MaxConfigKeyLength = 1000
)

// emailPattern accepts something@something.something with a single @ and no
// whitespace, Unicode spaces and the BOM included.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// SignUpForm is the data collected by the sign-up screen.
type SignUpForm struct {
	FirstName       string `form:"firstName" validate:"nonblank"`
	LastName        string `form:"lastName" validate:"nonblank"`
	Email           string `form:"email" validate:"required,simpleemail"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInForm is the data collected by the sign-in screen.
type SignInForm struct {
	Email    string `form:"email" validate:"required,simpleemail"`
	Password string `form:"password" validate:"required,min=6"`
}

// FieldErrors maps a form field name to its single error message. An empty
// map means the form is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// messageIDs resolves the failing (field, tag) pair to a catalogue entry.
var messageIDs = map[string]string{
	"firstName/nonblank":       "validation.first_name_required",
	"lastName/nonblank":        "validation.last_name_required",
	"email/required":           "validation.email_required",
	"email/simpleemail":        "validation.email_invalid",
	"password/required":        "validation.password_required",
	"password/min":             "validation.password_too_short",
	"confirmPassword/required": "validation.confirm_required",
	"confirmPassword/eqfield":  "validation.password_mismatch",
}

// Validator runs the sign-up, sign-in and configuration-key checks.
type Validator struct {
	v       *validator.Validate
	catalog *i18n.Catalog
}

// New builds a Validator whose messages are rendered by catalog.
func New(catalog *i18n.Catalog) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v, catalog: catalog}
}

// SignUp validates a sign-up form. Every invalid field is reported with the
// message of its first failing check.
func (val *Validator) SignUp(form SignUpForm) FieldErrors {
	return val.fieldErrors(val.v.Struct(form))
}

// SignIn validates a sign-in form.
func (val *Validator) SignIn(form SignInForm) FieldErrors {
	return val.fieldErrors(val.v.Struct(form))
}

// ConfigKey validates a public key after trimming surrounding whitespace.
// It returns "" for an acceptable key, otherwise one message that names the
// trimmed length.
func (val *Validator) ConfigKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return val.catalog.T("validation.key_required", nil)
	}

	length := utf8.RuneCountInString(trimmed)
	data := map[string]any{
		"Length": length,
		"Min":    MinConfigKeyLength,
		"Max":    MaxConfigKeyLength,
	}
	switch {
	case length < MinConfigKeyLength:
		return val.catalog.T("validation.key_too_short", data)
	case length > MaxConfigKeyLength:
		return val.catalog.T("validation.key_too_long", data)
	}
	return ""
}

func (val *Validator) fieldErrors(err error) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only InvalidValidationError lands here, which means a programming
		// error (non-struct passed in).
		panic(err)
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		id, ok := messageIDs[field+"/"+fe.Tag()]
		if !ok {
			out[field] = fe.Error()
			continue
		}
		out[field] = val.catalog.T(id, map[string]any{"Min": MinPasswordLength})
	}
	return out
}
