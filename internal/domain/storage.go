package domain

import "context"

// StorageError represents an error originating from the storage medium.
type StorageError string

func (e StorageError) Error() string {
	return string(e)
}

// ErrNoValue is returned when a key is not found in storage. Callers must
// treat this as a normal outcome, not a failure.
const ErrNoValue = StorageError("storage: key not found")

// Storage defines the interface (port) for the text-only key-value
// persistence medium. Implementations of this interface are the adapters
// (SQLite, Redis, filesystem, in-memory).
type Storage interface {
	// Get retrieves the value stored under key.
	// It returns ErrNoValue if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting an existing value if one exists.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the value stored under key.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the storage medium.
	Ping(ctx context.Context) error
}
