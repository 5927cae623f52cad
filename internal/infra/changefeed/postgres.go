package changefeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"

	"github.com/lib/pq"
)

const listenerPingInterval = 90 * time.Second

// ErrFeedReconnected is reported after the LISTEN connection was re-established.
// Notifications sent while it was down are lost.
var ErrFeedReconnected = errors.New("change feed connection re-established")

// postgresTransport receives NOTIFY payloads on "<prefix><collection>" channels.
type postgresTransport struct {
	listener   *pq.Listener
	prefix     string
	bufferSize int
	logger     *slog.Logger
	set        *subscriberSet

	mu        sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

// NewPostgresTransport opens a LISTEN connection on dsn.
func NewPostgresTransport(dsn, prefix string, bufferSize int, minReconnect, maxReconnect time.Duration, logger *slog.Logger) service.ChangeFeedTransport {
	t := &postgresTransport{
		prefix:     prefix,
		bufferSize: bufferSize,
		logger:     logger,
		set:        newSubscriberSet(),
		done:       make(chan struct{}),
	}

	t.listener = pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("[PostgresFeed] Listener event",
				slog.Int("event", int(ev)),
				slog.Any("error", err),
			)
		}
	})

	go t.run()

	return t
}

func (t *postgresTransport) run() {
	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case n := <-t.listener.Notify:
			if n == nil {
				// A nil notification signals a reconnect.
				for _, sub := range t.set.all() {
					sub.fail(ErrFeedReconnected)
				}

				continue
			}
			t.set.dispatch(n.Channel, []byte(n.Extra))
		case <-ticker.C:
			go func() {
				if err := t.listener.Ping(); err != nil {
					t.logger.Warn("[PostgresFeed] Ping failed", slog.Any("error", err))
				}
			}()
		}
	}
}

// Subscribe issues LISTEN for the first subscriber of a channel.
func (t *postgresTransport) Subscribe(_ context.Context, collection entity.Collection) (service.Subscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return nil, ErrTransportClosed
	default:
	}

	channel := t.prefix + string(collection)
	sub := newSubscription(collection, t.bufferSize)

	if t.set.add(channel, sub) {
		if err := t.listener.Listen(channel); err != nil && !errors.Is(err, pq.ErrChannelAlreadyOpen) {
			t.set.remove(channel, sub)

			return nil, errors.Wrapf(err, "failed to listen on %s", channel)
		}
	}

	sub.onClose = func() { t.release(channel, sub) }

	return sub, nil
}

func (t *postgresTransport) release(channel string, sub *subscription) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.set.remove(channel, sub) {
		return
	}

	select {
	case <-t.done:
		return
	default:
	}

	if err := t.listener.Unlisten(channel); err != nil && !errors.Is(err, pq.ErrChannelNotOpen) {
		t.logger.Warn("[PostgresFeed] Unlisten failed",
			slog.String("channel", channel),
			slog.Any("error", err),
		)
	}
}

func (t *postgresTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		for _, sub := range t.set.all() {
			_ = sub.Close()
		}
		err = t.listener.Close()
	})

	return err
}
