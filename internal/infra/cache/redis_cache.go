// Package cache implements the query cache the invalidation router keeps fresh.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"

	"github.com/go-redis/redis/v8"
)

const scanBatch = 200

// redisCache stores JSON encoded query results with a TTL.
type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a cache under keyPrefix. The TTL bounds how long a missed invalidation can serve stale data.
func NewRedisCache(client *redis.Client, keyPrefix string, ttl time.Duration) service.QueryCache {
	return &redisCache{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
	}
}

func (c *redisCache) storageKey(key entity.CacheKey) string {
	return c.prefix + key.String()
}

func (c *redisCache) Read(ctx context.Context, key entity.CacheKey, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.storageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read cache key %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Treat undecodable entries as a miss and let the caller refetch.
		return false, nil
	}

	return true, nil
}

func (c *redisCache) Write(ctx context.Context, key entity.CacheKey, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, c.storageKey(key), data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cache key %s", key)
	}

	return nil
}

// Invalidate deletes key and every key below it.
func (c *redisCache) Invalidate(ctx context.Context, key entity.CacheKey) error {
	exact := c.storageKey(key)
	pattern := globEscape(exact) + entity.CacheKeySeparator + "*"

	keys := []string{exact}
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan cache keys under %s", key)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "failed to invalidate cache key %s", key)
	}

	return nil
}

func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
