package store

import (
	"context"

	"github.com/jwhitley/storefront-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// List retrieves all products ordered ascending by ID.
	// Returns an empty slice, not nil, when no products exist.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product with a server-generated ID and returns
	// the persisted record.
	Create(ctx context.Context, params domain.CreateProduct) (*domain.Product, error)

	// Update applies a partial update: fields absent from params retain the
	// stored value. Returns the fully resolved record after the write.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, id int64, params domain.UpdateProduct) (*domain.Product, error)

	// Delete removes a product by ID.
	// Returns ErrProductNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) error
}
