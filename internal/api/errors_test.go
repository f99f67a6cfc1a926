package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwhitley/storefront-api/internal/domain"
	"github.com/jwhitley/storefront-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user_not_found", store.ErrUserNotFound, http.StatusNotFound},
		{"product_not_found", store.ErrProductNotFound, http.StatusNotFound},
		{"generic_not_found", store.ErrNotFound, http.StatusNotFound},
		{
			"wrapped_not_found",
			store.NewStoreError("user", "get", "lookup failed", store.ErrUserNotFound),
			http.StatusNotFound,
		},
		{"invalid_id", domain.ErrInvalidID, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"null_field", domain.ErrNullField, http.StatusBadRequest},
		{"duplicate_is_storage_error", store.ErrDuplicate, http.StatusInternalServerError},
		{"invalid_entity_is_storage_error", store.ErrInvalidEntity, http.StatusInternalServerError},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"user_not_found", store.ErrUserNotFound, "User not found"},
		{"product_not_found", store.ErrProductNotFound, "Product not found"},
		{"generic_not_found", store.ErrNotFound, "Resource not found"},
		{"null_field", domain.ErrNullField, "Fields cannot be null"},
		{"invalid_id", domain.ErrInvalidID, "Invalid request"},
		{
			"internal_details_never_leak",
			errors.New("pq: connection refused host=10.0.0.5"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
