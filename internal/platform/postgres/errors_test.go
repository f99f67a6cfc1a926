package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jwhitley/storefront-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "no_rows_maps_to_not_found",
			err:      sql.ErrNoRows,
			sentinel: store.ErrNotFound,
		},
		{
			name:     "wrapped_no_rows_maps_to_not_found",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			sentinel: store.ErrNotFound,
		},
		{
			name:     "unique_violation_maps_to_duplicate",
			err:      &pgconn.PgError{Code: uniqueViolationCode},
			sentinel: store.ErrDuplicate,
		},
		{
			name:     "foreign_key_violation_maps_to_invalid_entity",
			err:      &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_user"},
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "check_violation_maps_to_invalid_entity",
			err:      &pgconn.PgError{Code: checkViolationCode, ConstraintName: "chk_price"},
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "not_null_violation_maps_to_invalid_entity",
			err:      &pgconn.PgError{Code: notNullViolationCode, ColumnName: "email"},
			sentinel: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.True(t, errors.Is(mapped, tt.sentinel),
				"expected %v to map to %v", tt.err, tt.sentinel)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	assert.Nil(t, MapError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapError(plain))

	// Unrecognized pg error codes pass through unchanged.
	pgErr := &pgconn.PgError{Code: "57014"} // query_canceled
	assert.Equal(t, error(pgErr), MapError(pgErr))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
