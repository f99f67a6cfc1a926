// Package postgres implements the store interfaces against a PostgreSQL
// database reached through a bounded connection pool.
package postgres
