package api

import (
	"errors"
	"net/http"

	"github.com/jwhitley/storefront-api/internal/api/shared"
	"github.com/jwhitley/storefront-api/internal/domain"
	"github.com/jwhitley/storefront-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error types
// or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrNullField):
		return http.StatusBadRequest

	// Default: internal server error. Constraint violations land here too;
	// duplicates are not reported specially.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.Is(err, domain.ErrNullField):
		return "Fields cannot be null"

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError translates an error into an HTTP response using the
// status-code and safe-message mappings, logging the raw error alongside.
// An explicit userMessage overrides the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
