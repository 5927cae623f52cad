package changefeed

import (
	"context"
	"log/slog"

	"creaglass/config"
	"creaglass/internal/domain/constants"
	"creaglass/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BrokerParams holds dependencies for the in-process broker
type BrokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBrokerProvider creates the process-wide broker. It is always available to the push endpoint.
func NewBrokerProvider(params BrokerParams) *Broker {
	broker := NewBroker(params.Config.ChangeFeed.BufferSize, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return broker.Close()
		},
	})

	return broker
}

// TransportParams holds dependencies for ChangeFeedTransport, injected by Fx
type TransportParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Broker *Broker
	Redis  *redis.Client `optional:"true"`
}

// NewTransport creates the ChangeFeedTransport selected by configuration
func NewTransport(params TransportParams) (service.ChangeFeedTransport, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	var transport service.ChangeFeedTransport

	switch cfg.Provider {
	case "", constants.ChangeFeedProviderBroker:
		logger.Info("Using in-process broker change feed")

		// The broker is closed by its own hook.
		return params.Broker, nil

	case constants.ChangeFeedProviderPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("dsn is required for postgres change feed")
		}
		logger.Info("Using postgres LISTEN change feed", slog.String("channel_prefix", cfg.ChannelPrefix))

		transport = NewPostgresTransport(cfg.DSN, cfg.ChannelPrefix, cfg.BufferSize,
			cfg.MinReconnectInterval, cfg.MaxReconnectInterval, logger)

	case constants.ChangeFeedProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be configured for redis change feed")
		}
		logger.Info("Using redis stream change feed", slog.String("stream_prefix", cfg.ChannelPrefix))

		transport = NewRedisStreamTransport(params.Redis, cfg.ChannelPrefix, cfg.BufferSize, logger)

	case constants.ChangeFeedProviderWebsocket:
		if cfg.GatewayURL == "" {
			return nil, errors.New("gateway url is required for websocket change feed")
		}
		logger.Info("Using websocket gateway change feed", slog.String("gateway_url", cfg.GatewayURL))

		var err error
		transport, err = NewWebsocketTransport(WebsocketOptions{
			GatewayURL:        cfg.GatewayURL,
			APIKey:            cfg.GatewayKey,
			BufferSize:        cfg.BufferSize,
			HeartbeatInterval: cfg.HeartbeatInterval,
			MinReconnect:      cfg.MinReconnectInterval,
			MaxReconnect:      cfg.MaxReconnectInterval,
		}, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown change feed provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing ChangeFeedTransport")

			return transport.Close()
		},
	})

	return transport, nil
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBrokerProvider),
	fx.Provide(func(broker *Broker) service.ChangeFanout { return broker }),
	fx.Provide(NewTransport),
)
