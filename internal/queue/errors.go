package queue

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrCabinetNotFound = fmt.Errorf("cabinet %w", ErrNotFound)
	ErrEntryNotFound   = fmt.Errorf("queue entry %w", ErrNotFound)
)

// ValidationError reports a request the service refuses to apply: a bad or
// missing field, or an id that must reference an existing row.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
