package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by catalog and ledger lookups. Absence is a
	// normal outcome, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest is returned by the ledger when required fields are
	// missing at commit time. The flows validate per-step, so hitting this
	// indicates a caller bug rather than bad user input.
	ErrInvalidRequest = errors.New("invalid booking request")

	// ErrBusy is returned by the wizard while a reply is still pending.
	ErrBusy = errors.New("reply in flight")
)

// ValidationError reports a recoverable per-field input problem. It is
// surfaced as a re-prompt or form message, never treated as fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
