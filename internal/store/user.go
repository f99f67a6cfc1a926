package store

import (
	"context"

	"github.com/jwhitley/storefront-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List retrieves all users ordered ascending by ID.
	// Returns an empty slice, not nil, when no users exist.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create inserts a new user with a server-generated ID and returns the
	// persisted record.
	Create(ctx context.Context, params domain.CreateUser) (*domain.User, error)

	// Update applies a partial update: fields absent from params retain the
	// stored value. Returns the fully resolved record after the write.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id int64, params domain.UpdateUser) (*domain.User, error)

	// Delete removes a user by ID.
	// Returns ErrUserNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) error
}
