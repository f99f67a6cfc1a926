// Package domain defines the core entities and errors served by the API.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity or request payload fails
	// validation. This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNullField is returned when an update payload carries an explicit
	// JSON null for a field whose column cannot be cleared.
	ErrNullField = errors.New("field cannot be null")
)

// ValidationError wraps a sentinel error with the name of the offending field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
