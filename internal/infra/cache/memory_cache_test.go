package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_InvalidateMarksPrefixStale(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, entity.NewCacheKey("inventory"), 1))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("inventory", "g1"), 2))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("inventory-items"), 3))

	require.NoError(t, c.Invalidate(ctx, entity.NewCacheKey("inventory")))
	require.NoError(t, c.Invalidate(ctx, entity.NewCacheKey("inventory")))

	var v int
	hit, _ := c.Read(ctx, entity.NewCacheKey("inventory"), &v)
	assert.False(t, hit)
	hit, _ = c.Read(ctx, entity.NewCacheKey("inventory", "g1"), &v)
	assert.False(t, hit)
	hit, _ = c.Read(ctx, entity.NewCacheKey("inventory-items"), &v)
	assert.True(t, hit)
	assert.Equal(t, 3, v)
}

func TestMemoryCache_RewriteClearsStale(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	key := entity.NewCacheKey("events")

	require.NoError(t, c.Write(ctx, key, "a"))
	require.NoError(t, c.Invalidate(ctx, key))
	require.NoError(t, c.Write(ctx, key, "b"))

	var v string
	hit, err := c.Read(ctx, key, &v)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "b", v)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newMemoryCache(5*time.Second, func() time.Time { return now })
	ctx := context.Background()
	key := entity.NewCacheKey("users")

	require.NoError(t, c.Write(ctx, key, 1))
	now = now.Add(6 * time.Second)

	var v int
	hit, err := c.Read(ctx, key, &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCache_ConcurrentReadInvalidate(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	key := entity.NewCacheKey("notifications", "u1")
	require.NoError(t, c.Write(ctx, key, []string{"n1"}))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			var v []string
			_, _ = c.Read(ctx, key, &v)
		}()
		go func() {
			defer wg.Done()
			_ = c.Invalidate(ctx, entity.NewCacheKey("notifications"))
			_ = c.Write(ctx, key, []string{"n1", "n2"})
		}()
	}
	wg.Wait()

	require.NoError(t, c.Invalidate(ctx, entity.NewCacheKey("notifications")))
	var v []string
	hit, err := c.Read(ctx, key, &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
