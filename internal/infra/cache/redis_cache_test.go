package cache

import (
	"context"
	"testing"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCacheFixture(t *testing.T) (*miniredis.Miniredis, *redisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisCache(client, "query:", 5*time.Second).(*redisCache)
}

func TestRedisCache_WriteThenRead(t *testing.T) {
	_, c := newRedisCacheFixture(t)
	ctx := context.Background()
	key := entity.NewCacheKey("notifications", "unreadCount", "u1")

	require.NoError(t, c.Write(ctx, key, 7))

	var count int
	hit, err := c.Read(ctx, key, &count)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, count)
}

func TestRedisCache_InvalidatePrefix(t *testing.T) {
	mr, c := newRedisCacheFixture(t)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, entity.NewCacheKey("notifications"), []string{"all"}))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("notifications", "u1"), []string{"mine"}))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("notifications", "unreadCount", "u1"), 3))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("notificationsArchive"), 1))
	require.NoError(t, c.Write(ctx, entity.NewCacheKey("documents"), 1))

	require.NoError(t, c.Invalidate(ctx, entity.NewCacheKey("notifications")))

	assert.False(t, mr.Exists("query:notifications"))
	assert.False(t, mr.Exists("query:notifications:u1"))
	assert.False(t, mr.Exists("query:notifications:unreadCount:u1"))
	assert.True(t, mr.Exists("query:notificationsArchive"))
	assert.True(t, mr.Exists("query:documents"))
}

func TestRedisCache_InvalidateMissingKeyIsNoop(t *testing.T) {
	_, c := newRedisCacheFixture(t)

	assert.NoError(t, c.Invalidate(context.Background(), entity.NewCacheKey("events")))
}

func TestRedisCache_EntriesExpire(t *testing.T) {
	mr, c := newRedisCacheFixture(t)
	ctx := context.Background()
	key := entity.NewCacheKey("users")

	require.NoError(t, c.Write(ctx, key, "cached"))
	mr.FastForward(6 * time.Second)

	var value string
	hit, err := c.Read(ctx, key, &value)
	require.NoError(t, err)
	assert.False(t, hit)
}
