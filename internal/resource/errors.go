package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials reports a failed login lookup.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed client-supplied field.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
