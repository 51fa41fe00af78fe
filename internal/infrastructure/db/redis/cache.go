package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 30 * time.Second

// ListCache caches JSON-encoded list results in Redis with a short TTL.
// Entries are invalidated eagerly on mutation, so the TTL is only a
// backstop against missed invalidations.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get loads the cached value for key into v. A miss returns (false, nil).
func (c *ListCache) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores v under key for the cache's TTL.
func (c *ListCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the given keys.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
