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

// SQL statements for the users table. All SQL is explicit and parameterized.
const (
	sqlListUsers = `
		SELECT id, name, email
		FROM   users
		ORDER  BY id`

	sqlGetUserByID = `
		SELECT id, name, email
		FROM   users
		WHERE  id = $1`

	sqlInsertUser = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	sqlUpdateUser = `
		UPDATE users
		SET    name = $1, email = $2
		WHERE  id = $3
		RETURNING id, name, email`

	sqlDeleteUser = `
		DELETE FROM users WHERE id = $1`
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     *DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts the shared connection pool, which should
// be initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewPostgresUserStore(db *DB, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("user", "list", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, sqlListUsers)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("user", "list", "scan failed", MapError(err))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("user", "list", "row iteration failed", MapError(err))
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("user", "get", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	return s.getByID(ctx, conn, log, id)
}

// getByID runs the lookup on an already-acquired connection so Update can
// reuse it for both phases.
func (s *PostgresUserStore) getByID(
	ctx context.Context,
	conn store.DBTX,
	log *slog.Logger,
	id int64,
) (*domain.User, error) {
	var u domain.User
	err := conn.QueryRowContext(ctx, sqlGetUserByID, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}
	return &u, nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(
	ctx context.Context,
	params domain.CreateUser,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("user", "create", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	var u domain.User
	err = conn.QueryRowContext(ctx, sqlInsertUser, params.Name, params.Email).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Info("user created", slog.Int64("user_id", u.ID))
	return &u, nil
}

// Update implements store.UserStore.Update
//
// The update runs in two phases on a single pooled connection: fetch the
// existing row, merge the present fields over it, then write the resolved
// field set back. The two statements are not wrapped in a transaction, so a
// concurrent writer can interleave between the phases (last write wins). A
// concurrent delete is detected because the UPDATE ... RETURNING scan comes
// back empty, which surfaces as not found rather than fabricated post-state.
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id int64,
	params domain.UpdateUser,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, store.NewStoreError("user", "update", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	existing, err := s.getByID(ctx, conn, log, id)
	if err != nil {
		return nil, err
	}

	resolved := params.Apply(*existing)

	var u domain.User
	err = conn.QueryRowContext(ctx, sqlUpdateUser, resolved.Name, resolved.Email, id).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Row vanished between the two phases.
			log.Warn("user deleted concurrently during update", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to update user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "update", "update failed", MapError(err))
	}

	log.Info("user updated", slog.Int64("user_id", u.ID))
	return &u, nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return store.NewStoreError("user", "delete", "failed to acquire connection", err)
	}
	defer func() { _ = conn.Close() }()

	result, err := conn.ExecContext(ctx, sqlDeleteUser, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("user", "delete", "delete failed", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("user", "delete", "rows affected unavailable", MapError(err))
	}
	if affected == 0 {
		log.Debug("user not found for deletion", slog.Int64("user_id", id))
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
