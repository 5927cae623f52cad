package service

import (
	"context"

	"creaglass/internal/domain/entity"
)

// QueryCache holds query results keyed by CacheKey.
type QueryCache interface {
	// Read decodes the value stored under key into dest. It reports false on a miss or a stale entry.
	Read(ctx context.Context, key entity.CacheKey, dest any) (bool, error)

	// Write stores value under key.
	Write(ctx context.Context, key entity.CacheKey, value any) error

	// Invalidate marks key and every key it prefixes as stale. Idempotent.
	Invalidate(ctx context.Context, key entity.CacheKey) error
}
