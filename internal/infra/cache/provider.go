package cache

import (
	"log/slog"

	"creaglass/config"
	"creaglass/internal/domain/constants"
	"creaglass/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for QueryCache, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New creates the QueryCache selected by configuration
func New(params Params) (service.QueryCache, error) {
	cfg := params.Config.Cache

	switch cfg.Provider {
	case "", constants.CacheProviderMemory:
		params.Logger.Info("Using in-memory query cache", slog.Duration("ttl", cfg.TTL))

		return NewMemoryCache(cfg.TTL), nil

	case constants.CacheProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be configured for redis cache")
		}
		params.Logger.Info("Using redis query cache",
			slog.String("key_prefix", cfg.KeyPrefix),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewRedisCache(params.Redis, cfg.KeyPrefix, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}

// Module provides the query cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
