// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// RealtimeSubscriptions is the owned set of change-feed subscriptions of one realtime session.
// It is returned by Start and must be handed back to Stop or Restart.
type RealtimeSubscriptions interface {
	SessionID() uuid.UUID
	UserID() uuid.UUID
	// Collections lists every watched collection, open or not.
	Collections() []entity.Collection
	// Open counts the subscriptions currently open.
	Open() int
}

// InvalidationRouter maps change events to the cache keys they make stale.
type InvalidationRouter interface {
	// Route is a pure function of the event and the static routing table.
	Route(event *entity.ChangeEvent) []entity.CacheKey

	// Apply routes event and invalidates every key in the query cache. Failures are logged.
	Apply(ctx context.Context, event *entity.ChangeEvent) []entity.CacheKey
}

// AlertDispatcher decides whether a notification insert alerts the target device and delivers the alert.
type AlertDispatcher interface {
	// MaybeAlert reports whether an alert was dispatched. Delivery runs detached from the caller.
	MaybeAlert(ctx context.Context, event *entity.ChangeEvent, target entity.AlertTarget) bool

	// Wait blocks until every dispatched alert finished.
	Wait()

	// Cleanup releases the shared sound handle.
	Cleanup(ctx context.Context) error
}

// ChangeFeedSubscriber opens and closes the subscriptions of a session.
type ChangeFeedSubscriber interface {
	Start(ctx context.Context, session *entity.Session) (RealtimeSubscriptions, error)
	// Stop closes every open subscription. Safe on nil and on already stopped values.
	Stop(subs RealtimeSubscriptions) error
	// Restart closes and re-opens every watched collection.
	Restart(ctx context.Context, subs RealtimeSubscriptions) error
}

// RealtimeUsecase gates realtime sessions behind an authenticated session.
type RealtimeUsecase interface {
	StartRealtime(ctx context.Context, session *entity.Session) (RealtimeSubscriptions, error)
	StopRealtime(ctx context.Context, sessionID uuid.UUID) error
	RestartRealtime(ctx context.Context, sessionID uuid.UUID) (RealtimeSubscriptions, error)

	// RouteChange returns the cache keys event invalidates without touching the cache.
	RouteChange(event *entity.ChangeEvent) []entity.CacheKey

	// AlertActiveSessions offers event to the alert dispatcher for every active session.
	AlertActiveSessions(ctx context.Context, event *entity.ChangeEvent) int

	// Shutdown stops every session and drains in-flight alerts.
	Shutdown(ctx context.Context) error
}
