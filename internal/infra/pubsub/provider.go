package pubsub

import (
	"context"
	"log/slog"

	"creaglass/config"
	"creaglass/internal/domain/constants"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/infra/changefeed"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChange(_ context.Context, event *entity.ChangeEvent) error {
	p.logger.Debug("[NoopPubSub] Change publishing disabled, skipping",
		slog.String("event_id", event.ID),
		slog.String("collection", string(event.Collection)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// brokerPublisher hands events straight to the in-process broker.
type brokerPublisher struct {
	broker *changefeed.Broker
}

func (p *brokerPublisher) PublishChange(_ context.Context, event *entity.ChangeEvent) error {
	p.broker.Publish(event)

	return nil
}

func (p *brokerPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for ChangePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Redis  *redis.Client      `optional:"true"`
	Broker *changefeed.Broker `optional:"true"`
}

// NewChangePublisher creates a ChangePublisher based on configuration
func NewChangePublisher(params PublisherParams) (service.ChangePublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.ChangePublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be configured for redis provider")
		}
		logger.Info("Using redis stream publisher")

		publisher = NewRedisStreamPublisher(params.Redis, channelPrefix(params.Config), logger)

	case constants.PubSubProviderPostgres:
		logger.Info("Using postgres notify publisher")

		publisher = NewPostgresNotifyPublisher(params.DB, channelPrefix(params.Config), logger)

	case constants.PubSubProviderBroker:
		if params.Broker == nil {
			return nil, errors.New("broker change feed is required for broker provider")
		}
		logger.Info("Using in-process broker publisher")

		publisher = &brokerPublisher{broker: params.Broker}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChangePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func channelPrefix(cfg *config.Config) string {
	if cfg.ChangeFeed == nil {
		return ""
	}

	return cfg.ChangeFeed.ChannelPrefix
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangePublisher),
)
