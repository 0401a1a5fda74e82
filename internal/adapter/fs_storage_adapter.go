package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"exambook/internal/domain"
)

// FSStorageAdapter implements the domain.Storage port on a plain
// directory, one file per key. Keys may contain path separators, so each
// key is escaped into a flat filename.
type FSStorageAdapter struct {
	base string
}

// NewFSStorageAdapter creates a new instance of FSStorageAdapter, creating
// the base directory if needed.
func NewFSStorageAdapter(base string) (domain.Storage, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", base, err)
	}
	return &FSStorageAdapter{base: base}, nil
}

func (a *FSStorageAdapter) filename(key string) string {
	return filepath.Join(a.base, url.PathEscape(key))
}

// Get retrieves a value by key.
// It translates a missing file to domain.ErrNoValue.
func (a *FSStorageAdapter) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(a.filename(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNoValue
		}
		return "", fmt.Errorf("failed to read value for key %s: %w", key, err)
	}
	return string(data), nil
}

// Set stores a value under key, replacing any existing file.
func (a *FSStorageAdapter) Set(ctx context.Context, key string, value string) error {
	if err := os.WriteFile(a.filename(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write value for key %s: %w", key, err)
	}
	return nil
}

// Delete removes a value by key. Deleting an absent key is not an error.
func (a *FSStorageAdapter) Delete(ctx context.Context, key string) error {
	err := os.Remove(a.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Ping checks that the base directory is still accessible.
func (a *FSStorageAdapter) Ping(ctx context.Context) error {
	info, err := os.Stat(a.base)
	if err != nil {
		return fmt.Errorf("storage directory %s is not accessible: %w", a.base, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", a.base)
	}
	return nil
}
