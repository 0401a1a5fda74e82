package adapter

import (
	"context"
	"sync"

	"exambook/internal/domain"
)

// MemoryStorageAdapter implements the domain.Storage port in process
// memory. It backs unit tests and throwaway runs; nothing survives a
// restart.
type MemoryStorageAdapter struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorageAdapter creates a new empty in-memory storage.
func NewMemoryStorageAdapter() *MemoryStorageAdapter {
	return &MemoryStorageAdapter{values: make(map[string]string)}
}

// Get retrieves a value by key.
// It returns domain.ErrNoValue when the key is absent.
func (a *MemoryStorageAdapter) Get(ctx context.Context, key string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	value, ok := a.values[key]
	if !ok {
		return "", domain.ErrNoValue
	}
	return value, nil
}

// Set stores a value under key, overwriting any existing value.
func (a *MemoryStorageAdapter) Set(ctx context.Context, key string, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[key] = value
	return nil
}

// Delete removes a value by key. Deleting an absent key is not an error.
func (a *MemoryStorageAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.values, key)
	return nil
}

// Ping always succeeds.
func (a *MemoryStorageAdapter) Ping(ctx context.Context) error {
	return nil
}

// Len reports the number of stored keys. Test helper.
func (a *MemoryStorageAdapter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.values)
}
