package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"
)

type memoryEntry struct {
	key     entity.CacheKey
	data    []byte
	expires time.Time
	stale   bool
}

// memoryCache is a process-local cache for single-instance deployments and tests.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-process cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) service.QueryCache {
	return newMemoryCache(ttl, time.Now)
}

func newMemoryCache(ttl time.Duration, now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *memoryCache) Read(_ context.Context, key entity.CacheKey, dest any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key.String()]
	var (
		data    []byte
		expires time.Time
		stale   bool
	)
	if ok {
		data, expires, stale = entry.data, entry.expires, entry.stale
	}
	c.mu.RUnlock()

	if !ok || stale || (c.ttl > 0 && c.now().After(expires)) {
		return false, nil
	}

	// data is never mutated after Write, only replaced.
	if err := json.Unmarshal(data, dest); err != nil {
		return false, nil
	}

	return true, nil
}

func (c *memoryCache) Write(_ context.Context, key entity.CacheKey, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key.String()] = &memoryEntry{
		key:     append(entity.CacheKey(nil), key...),
		data:    data,
		expires: c.now().Add(c.ttl),
	}

	return nil
}

// Invalidate marks key and every key it prefixes as stale.
func (c *memoryCache) Invalidate(_ context.Context, key entity.CacheKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		if entry.key.HasPrefix(key) {
			entry.stale = true
		}
	}

	return nil
}
