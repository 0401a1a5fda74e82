package adapter

import (
	"context"
	"database/sql"
	"fmt"

	"exambook/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SQLiteStorageAdapter implements the domain.Storage port on top of a
// single kv_store table in an embedded SQLite database.
type SQLiteStorageAdapter struct {
	db *sqlx.DB
}

// NewSQLiteStorageAdapter creates a new instance of SQLiteStorageAdapter.
// The kv_store table must exist; see database/migrations.
func NewSQLiteStorageAdapter(db *sqlx.DB) domain.Storage {
	return &SQLiteStorageAdapter{db: db}
}

// Get retrieves a value by key.
// It translates sql.ErrNoRows to domain.ErrNoValue.
func (a *SQLiteStorageAdapter) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := a.db.GetContext(ctx, &value, `SELECT v FROM kv_store WHERE k = ?`, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrNoValue
		}
		return "", fmt.Errorf("failed to get value for key %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value under key, replacing any existing value.
func (a *SQLiteStorageAdapter) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v`
	if _, err := a.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value for key %s: %w", key, err)
	}
	return nil
}

// Delete removes a value by key. Deleting an absent key is not an error.
func (a *SQLiteStorageAdapter) Delete(ctx context.Context, key string) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM kv_store WHERE k = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Ping checks the health of the database connection.
func (a *SQLiteStorageAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}
