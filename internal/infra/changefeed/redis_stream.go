package changefeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"

	"github.com/go-redis/redis/v8"
)

const (
	streamReadCount    = 100
	streamReadBlock    = 5 * time.Second
	streamRetryBackoff = time.Second
)

// redisStreamTransport tails one redis stream per subscription.
type redisStreamTransport struct {
	client     *redis.Client
	prefix     string
	bufferSize int
	block      time.Duration
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisStreamTransport reads "<prefix><collection>" streams written by the redis publisher.
func NewRedisStreamTransport(client *redis.Client, prefix string, bufferSize int, logger *slog.Logger) service.ChangeFeedTransport {
	return newRedisStreamTransport(client, prefix, bufferSize, streamReadBlock, logger)
}

func newRedisStreamTransport(client *redis.Client, prefix string, bufferSize int, block time.Duration, logger *slog.Logger) *redisStreamTransport {
	ctx, cancel := context.WithCancel(context.Background())

	return &redisStreamTransport{
		client:     client,
		prefix:     prefix,
		bufferSize: bufferSize,
		block:      block,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Subscribe starts reading after the current tail of the stream.
func (t *redisStreamTransport) Subscribe(ctx context.Context, collection entity.Collection) (service.Subscription, error) {
	if t.ctx.Err() != nil {
		return nil, ErrTransportClosed
	}

	stream := t.prefix + string(collection)
	lastID, err := t.tailID(ctx, stream)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithCancel(t.ctx)
	sub := newSubscription(collection, t.bufferSize)
	sub.onClose = cancel

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.read(readCtx, sub, stream, lastID)
	}()

	return sub, nil
}

func (t *redisStreamTransport) tailID(ctx context.Context, stream string) (string, error) {
	entries, err := t.client.XRevRangeN(ctx, stream, "+", "-", 1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.Wrapf(err, "failed to read tail of %s", stream)
	}
	if len(entries) == 0 {
		return "0-0", nil
	}

	return entries[0].ID, nil
}

func (t *redisStreamTransport) read(ctx context.Context, sub *subscription, stream, lastID string) {
	for ctx.Err() == nil {
		streams, err := t.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{stream, lastID},
			Count:   streamReadCount,
			Block:   t.block,
		}).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			sub.fail(errors.Wrapf(err, "failed to read stream %s", stream))

			select {
			case <-ctx.Done():
				return
			case <-time.After(streamRetryBackoff):
			}

			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					sub.fail(errors.WithMessage(entity.ErrMalformedEvent, "stream entry "+msg.ID+" without data"))

					continue
				}

				event, decodeErr := entity.DecodeWireChange([]byte(raw))
				if decodeErr != nil {
					sub.fail(decodeErr)

					continue
				}
				if acceptErr := sub.accept(event); acceptErr != nil {
					sub.fail(acceptErr)

					continue
				}
				if !sub.deliver(ctx, event) {
					return
				}
			}
		}
	}
}

// Close stops every reader and waits for them to exit.
func (t *redisStreamTransport) Close() error {
	t.cancel()
	t.wg.Wait()

	return nil
}
