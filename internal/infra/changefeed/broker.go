package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
)

// Broker is the in-process change feed. The push endpoint and the broker publisher feed it.
type Broker struct {
	set        *subscriberSet
	bufferSize int
	logger     *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBroker creates an in-process broker with per-subscription buffers of bufferSize.
func NewBroker(bufferSize int, logger *slog.Logger) *Broker {
	return &Broker{
		set:        newSubscriberSet(),
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// Subscribe opens a subscription on collection.
func (b *Broker) Subscribe(_ context.Context, collection entity.Collection) (service.Subscription, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrTransportClosed
	}

	sub := newSubscription(collection, b.bufferSize)
	channel := string(collection)
	sub.onClose = func() { b.set.remove(channel, sub) }
	b.set.add(channel, sub)

	return sub, nil
}

// Publish fans event out to the subscribers of its collection and returns how many accepted it.
func (b *Broker) Publish(event *entity.ChangeEvent) int {
	if event == nil {
		return 0
	}

	delivered := 0
	for _, sub := range b.set.on(string(event.Collection)) {
		if sub.offer(event) {
			delivered++
		}
	}

	b.logger.Debug("[Broker] Change fanned out",
		slog.String("event_id", event.ID),
		slog.String("collection", string(event.Collection)),
		slog.Int("delivered", delivered),
	)

	return delivered
}

// Close closes every open subscription. Later Subscribe calls fail.
func (b *Broker) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	for _, sub := range b.set.all() {
		_ = sub.Close()
	}

	return nil
}
