// Package forms holds the client-side validation of what the user types
// before anything is sent to the backend.
package forms

import (
	"errors"
	"strings"
)

var (
	ErrRequired         = errors.New("is required")
	ErrPasswordTooShort = errors.New("must have at least 8 characters")
	ErrPasswordMismatch = errors.New("does not match the password")
	ErrTooShort         = errors.New("is too short")
	ErrTooLong          = errors.New("is too long")
)

// FieldError ties a validation failure to the form field it concerns.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// InvalidInput collects every failed field of a form submission.
type InvalidInput []error

func (e InvalidInput) Error() string {
	var b strings.Builder
	b.WriteString("invalid input:")
	for _, err := range e {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e InvalidInput) Unwrap() []error {
	return e
}

// collector accumulates field errors; err returns nil when there are none.
type collector struct {
	errs InvalidInput
}

func (c *collector) add(field string, err error) {
	c.errs = append(c.errs, FieldError{Field: field, Err: err})
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
