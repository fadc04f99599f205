package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced id has no row.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a malformed required field, e.g. a price that
// does not parse as a number.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
