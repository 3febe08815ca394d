// Package errs defines the error taxonomy shared by the account core:
// not-found, already-exists, validation, authorization and version-conflict
// failures. The API layer maps these onto transport status codes.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrVersionConflict   = errors.New("version conflict")

	// ErrNotAuthorized is deliberately generic: authorization failures must
	// not reveal which check rejected the request.
	ErrNotAuthorized = errors.New("operation not permitted")
)

// Constraint names used by ValidationError.
const (
	ConstraintRequired = "required"
	ConstraintLength   = "length"
	ConstraintPattern  = "pattern"
	ConstraintFormat   = "format"
	ConstraintOneOf    = "one-of"
)

// ValidationError reports a malformed field together with the constraint it
// violated, so user-facing messages can name both.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for the given field and constraint.
func Invalid(field, constraint, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: constraint,
		Message:    fmt.Sprintf(format, args...),
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
