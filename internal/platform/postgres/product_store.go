package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jwhitley/storefront-api/internal/domain"
	"github.com/jwhitley/storefront-api/internal/platform/logger"
	"github.com/jwhitley/storefront-api/internal/store"
)

// SQL statements for the products table.
const (
	sqlListProducts = `
		SELECT id, name, description, price
		FROM   products
		ORDER  BY id`

	sqlGetProductByID = `
		SELECT id, name, description, price
		FROM   products
		WHERE  id = $1`

	sqlInsertProduct = `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, price`

	sqlUpdateProduct = `
		UPDATE products
		SET    name = $1, description = $2, price = $3
		WHERE  id = $4
		RETURNING id, name, description, price`

	sqlDeleteProduct = `
		DELETE FROM products WHERE id = $1`
)

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     *DB
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts the shared connection pool, which
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresProductStore(db *DB, log *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: log.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// List implements store.ProductStore.List
func (s *PostgresProductStore) List(ctx context.Context) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("product", "list", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, sqlListProducts)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("product", "list", "scan failed", MapError(err))
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("product", "list", "row iteration failed", MapError(err))
	}

	return products, nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("product", "get", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	return s.getByID(ctx, conn, log, id)
}

func (s *PostgresProductStore) getByID(
	ctx context.Context,
	conn store.DBTX,
	log *slog.Logger,
	id int64,
) (*domain.Product, error) {
	var p domain.Product
	err := conn.QueryRowContext(ctx, sqlGetProductByID, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "get", "query failed", MapError(err))
	}
	return &p, nil
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(
	ctx context.Context,
	params domain.CreateProduct,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("product", "create", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	var p domain.Product
	err = conn.QueryRowContext(ctx, sqlInsertProduct, params.Name, params.Description, params.Price).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "create", "insert failed", MapError(err))
	}

	log.Info("product created", slog.Int64("product_id", p.ID))
	return &p, nil
}

// Update implements store.ProductStore.Update
//
// Same two-phase fetch-merge-write as the user store, on a single pooled
// connection and without a transaction. See PostgresUserStore.Update for
// the concurrency caveats.
func (s *PostgresProductStore) Update(
	ctx context.Context,
	id int64,
	params domain.UpdateProduct,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("product", "update", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	existing, err := s.getByID(ctx, conn, log, id)
	if err != nil {
		return nil, err
	}

	resolved := params.Apply(*existing)

	var p domain.Product
	err = conn.QueryRowContext(
		ctx,
		sqlUpdateProduct,
		resolved.Name,
		resolved.Description,
		resolved.Price,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("product deleted concurrently during update", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to update product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "update", "update failed", MapError(err))
	}

	log.Info("product updated", slog.Int64("product_id", p.ID))
	return &p, nil
}

// Delete implements store.ProductStore.Delete
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return store.NewStoreError("product", "delete", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	result, err := conn.ExecContext(ctx, sqlDeleteProduct, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("product", "delete", "delete failed", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("product", "delete", "rows affected unavailable", MapError(err))
	}
	if affected == 0 {
		log.Debug("product not found for deletion", slog.Int64("product_id", id))
		return store.ErrProductNotFound
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}
