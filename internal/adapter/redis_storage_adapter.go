package adapter

import (
	"context"

	"exambook/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStorageAdapter implements the domain.Storage port using a Redis
// client. Values are persisted without expiration; Redis is a storage
// medium here, not a cache.
type RedisStorageAdapter struct {
	client *redis.Client
}

// NewRedisStorageAdapter creates a new instance of RedisStorageAdapter.
// It expects a connected *redis.Client.
func NewRedisStorageAdapter(client *redis.Client) domain.Storage {
	return &RedisStorageAdapter{client: client}
}

// Get retrieves a value from Redis.
// It translates redis.Nil to domain.ErrNoValue.
func (r *RedisStorageAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrNoValue
		}
		return "", err
	}
	return val, nil
}

// Set stores a value in Redis without expiration.
func (r *RedisStorageAdapter) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes a value from Redis.
func (r *RedisStorageAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisStorageAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
