package pubsub

import (
	"context"
	"log/slog"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// streamMaxLen caps every change stream. Realtime readers only need the tail.
const streamMaxLen = 10000

// redisStreamPublisher appends change events to one redis stream per collection.
type redisStreamPublisher struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStreamPublisher creates a publisher writing to "<prefix><collection>" streams.
func NewRedisStreamPublisher(client *redis.Client, prefix string, logger *slog.Logger) service.ChangePublisher {
	return &redisStreamPublisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// PublishChange XADDs the encoded event under the "data" field.
func (p *redisStreamPublisher) PublishChange(ctx context.Context, event *entity.ChangeEvent) error {
	data, err := encodeChange(event)
	if err != nil {
		return err
	}

	stream := p.prefix + string(event.Collection)
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to publish to stream %s", stream)
	}

	p.logger.Debug("[RedisStream] Change published",
		slog.String("stream", stream),
		slog.String("entry_id", id),
		slog.String("event_id", event.ID),
	)

	return nil
}

// Close is a no-op. The shared client is closed by its own lifecycle hook.
func (p *redisStreamPublisher) Close() error {
	return nil
}
