package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// ErrInvalid is matched by every *FieldError.
var ErrInvalid = errors.New("validation failed")

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Check returns the first non-nil error. Forms are checked in field order
// and only the first failure is reported.
func Check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: "is required"}
	}
	return nil
}

func Email(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if err := validate.Var(strings.TrimSpace(value), "email"); err != nil {
		return &FieldError{Field: field, Reason: "must be a valid email address"}
	}
	return nil
}

// Price requires a non-negative decimal in its string form.
func Price(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return &FieldError{Field: field, Reason: "must be a number"}
	}
	if d.IsNegative() {
		return &FieldError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &FieldError{Field: field, Reason: "must be one of " + strings.Join(allowed, ", ")}
}

func URL(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if err := validate.Var(strings.TrimSpace(value), "http_url"); err != nil {
		return &FieldError{Field: field, Reason: "must be an http(s) URL"}
	}
	return nil
}
