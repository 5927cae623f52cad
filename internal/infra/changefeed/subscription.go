// Package changefeed implements the transports a realtime session subscribes through.
package changefeed

import (
	"context"
	"sync"

	"creaglass/internal/domain/entity"
	"creaglass/internal/errors"
)

var (
	// ErrTransportClosed is returned by Subscribe after the transport was closed.
	ErrTransportClosed = errors.New("change feed transport closed")
	// ErrEventDropped is reported when a subscriber does not keep up with its buffer.
	ErrEventDropped = errors.New("change event dropped: subscriber buffer full")
)

const errorBufferSize = 8

// subscription is the channel pair shared by every transport.
type subscription struct {
	collection entity.Collection
	events     chan *entity.ChangeEvent
	errs       chan error
	done       chan struct{}
	closeOnce  sync.Once
	onClose    func()
}

func newSubscription(collection entity.Collection, bufferSize int) *subscription {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &subscription{
		collection: collection,
		events:     make(chan *entity.ChangeEvent, bufferSize),
		errs:       make(chan error, errorBufferSize),
		done:       make(chan struct{}),
	}
}

func (s *subscription) Collection() entity.Collection      { return s.collection }
func (s *subscription) Events() <-chan *entity.ChangeEvent { return s.events }
func (s *subscription) Errors() <-chan error               { return s.errs }
func (s *subscription) Done() <-chan struct{}              { return s.done }

func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.onClose != nil {
			s.onClose()
		}
	})

	return nil
}

func (s *subscription) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// deliver waits for buffer space. It reports false once the subscription or ctx is done.
func (s *subscription) deliver(ctx context.Context, event *entity.ChangeEvent) bool {
	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// offer queues event without blocking. A full buffer reports ErrEventDropped on Errors.
func (s *subscription) offer(event *entity.ChangeEvent) bool {
	if s.closed() {
		return false
	}

	select {
	case s.events <- event:
		return true
	default:
		s.fail(errors.WithMessage(ErrEventDropped, string(s.collection)))

		return false
	}
}

// fail reports err without blocking. Errors beyond the buffer are dropped.
func (s *subscription) fail(err error) {
	if s.closed() {
		return
	}

	select {
	case s.errs <- err:
	default:
	}
}

// accept checks that a decoded event belongs to this subscription.
func (s *subscription) accept(event *entity.ChangeEvent) error {
	if event.Collection != s.collection {
		return errors.WithMessage(entity.ErrMalformedEvent, "event for "+string(event.Collection)+" on "+string(s.collection))
	}

	return nil
}

// subscriberSet indexes open subscriptions by feed channel.
type subscriberSet struct {
	mu   sync.RWMutex
	subs map[string]map[*subscription]struct{}
}

func newSubscriberSet() *subscriberSet {
	return &subscriberSet{subs: make(map[string]map[*subscription]struct{})}
}

// add registers sub and reports whether it is the first one on channel.
func (set *subscriberSet) add(channel string, sub *subscription) bool {
	set.mu.Lock()
	defer set.mu.Unlock()

	first := len(set.subs[channel]) == 0
	if set.subs[channel] == nil {
		set.subs[channel] = make(map[*subscription]struct{})
	}
	set.subs[channel][sub] = struct{}{}

	return first
}

// remove unregisters sub and reports whether channel has no subscriber left.
func (set *subscriberSet) remove(channel string, sub *subscription) bool {
	set.mu.Lock()
	defer set.mu.Unlock()

	delete(set.subs[channel], sub)
	if len(set.subs[channel]) == 0 {
		delete(set.subs, channel)

		return true
	}

	return false
}

func (set *subscriberSet) on(channel string) []*subscription {
	set.mu.RLock()
	defer set.mu.RUnlock()

	subs := make([]*subscription, 0, len(set.subs[channel]))
	for sub := range set.subs[channel] {
		subs = append(subs, sub)
	}

	return subs
}

func (set *subscriberSet) channels() []string {
	set.mu.RLock()
	defer set.mu.RUnlock()

	channels := make([]string, 0, len(set.subs))
	for channel := range set.subs {
		channels = append(channels, channel)
	}

	return channels
}

func (set *subscriberSet) all() []*subscription {
	set.mu.RLock()
	defer set.mu.RUnlock()

	var subs []*subscription
	for _, bucket := range set.subs {
		for sub := range bucket {
			subs = append(subs, sub)
		}
	}

	return subs
}

// dispatch decodes payload and offers it to every subscriber of channel.
func (set *subscriberSet) dispatch(channel string, payload []byte) {
	subs := set.on(channel)
	if len(subs) == 0 {
		return
	}

	event, err := entity.DecodeWireChange(payload)
	for _, sub := range subs {
		if err != nil {
			sub.fail(err)

			continue
		}
		if acceptErr := sub.accept(event); acceptErr != nil {
			sub.fail(acceptErr)

			continue
		}
		sub.offer(event)
	}
}
