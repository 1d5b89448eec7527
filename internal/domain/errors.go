package domain

import "errors"

var (
	// ErrNotFound indicates the requested document was not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a document with the same unique key already exists.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidID indicates a malformed document identifier.
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError carries a user-facing rejection message for bad input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError.
func Validation(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
