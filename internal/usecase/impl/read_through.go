package impl

import (
	"context"
	"log/slog"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
)

// readThrough serves key from the query cache and loads and stores it on a miss.
// Cache failures degrade to a direct load.
func readThrough[T any](
	ctx context.Context,
	cache service.QueryCache,
	logger *slog.Logger,
	key entity.CacheKey,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var cached T
	hit, err := cache.Read(ctx, key, &cached)
	if err != nil {
		logger.Warn("Query cache read failed", slog.String("key", key.String()), slog.Any("error", err))
	} else if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	if err := cache.Write(ctx, key, value); err != nil {
		logger.Warn("Query cache write failed", slog.String("key", key.String()), slog.Any("error", err))
	}

	return value, nil
}

// invalidateKeys drops keys this process changed itself. Failures leave the entries to expire.
func invalidateKeys(ctx context.Context, logger *slog.Logger, cache service.QueryCache, keys ...entity.CacheKey) {
	for _, key := range keys {
		if err := cache.Invalidate(ctx, key); err != nil {
			logger.Warn("Query cache invalidation failed", slog.String("key", key.String()), slog.Any("error", err))
		}
	}
}
