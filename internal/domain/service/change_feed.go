package service

import (
	"context"

	"creaglass/internal/domain/entity"
)

// Subscription is an open server-push channel for one collection.
// Events of the collection arrive in order on Events. Decode and transport
// failures arrive on Errors and never close the subscription.
type Subscription interface {
	Collection() entity.Collection
	Events() <-chan *entity.ChangeEvent
	Errors() <-chan error
	// Done is closed once the subscription is closed. Events and Errors are never closed.
	Done() <-chan struct{}
	// Close ends delivery. It is safe to call more than once.
	Close() error
}

// ChangeFeedTransport opens subscriptions on the backend change feed.
type ChangeFeedTransport interface {
	Subscribe(ctx context.Context, collection entity.Collection) (Subscription, error)
	Close() error
}

// ChangeFanout hands an event received out of band to the local subscribers of its collection.
type ChangeFanout interface {
	// Publish returns how many subscriptions accepted the event.
	Publish(event *entity.ChangeEvent) int
}
