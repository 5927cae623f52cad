package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type realtimeSession struct {
	session *entity.Session
	subs    usecase.RealtimeSubscriptions
}

// realtimeService is the session gate. It owns the registry of active realtime sessions.
type realtimeService struct {
	subscriber usecase.ChangeFeedSubscriber
	router     usecase.InvalidationRouter
	dispatcher usecase.AlertDispatcher
	sessions   service.SessionProvider
	logger     *slog.Logger
	now        func() time.Time

	mu     sync.Mutex
	active map[uuid.UUID]*realtimeSession
}

// RealtimeServiceParams holds dependencies for the session gate, injected by Fx.
type RealtimeServiceParams struct {
	fx.In

	Subscriber usecase.ChangeFeedSubscriber
	Router     usecase.InvalidationRouter
	Dispatcher usecase.AlertDispatcher
	Sessions   service.SessionProvider
	Logger     *slog.Logger
}

// NewRealtimeService is the constructor for realtimeService.
func NewRealtimeService(params RealtimeServiceParams) usecase.RealtimeUsecase {
	return &realtimeService{
		subscriber: params.Subscriber,
		router:     params.Router,
		dispatcher: params.Dispatcher,
		sessions:   params.Sessions,
		logger:     params.Logger,
		now:        time.Now,
		active:     make(map[uuid.UUID]*realtimeSession),
	}
}

func (srv *realtimeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartRealtime opens the subscriptions of session. Nothing is opened without an active, authenticated session.
// Starting an already active session returns its existing subscriptions.
func (srv *realtimeService) StartRealtime(ctx context.Context, session *entity.Session) (usecase.RealtimeSubscriptions, error) {
	srv.reapExpired(ctx)

	if !srv.authenticated(ctx, session) {
		srv.log(ctx).Warn("[Realtime] Refusing to start without an active session")

		return nil, errors.Wrap(domainerrors.ErrNoSession, "start realtime")
	}

	srv.mu.Lock()
	if existing, ok := srv.active[session.ID]; ok {
		srv.mu.Unlock()

		return existing.subs, nil
	}
	srv.mu.Unlock()

	subs, err := srv.subscriber.Start(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start change feed subscriptions")
	}

	srv.mu.Lock()
	if existing, ok := srv.active[session.ID]; ok {
		// Lost a concurrent start for the same session.
		srv.mu.Unlock()
		if err := srv.subscriber.Stop(subs); err != nil {
			srv.log(ctx).Warn("[Realtime] Failed to stop duplicate subscriptions", slog.Any("error", err))
		}

		return existing.subs, nil
	}
	srv.active[session.ID] = &realtimeSession{session: session, subs: subs}
	srv.mu.Unlock()

	srv.log(ctx).Info("[Realtime] Session started",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()),
	)

	return subs, nil
}

// authenticated requires session to be active and to be the session of the current request.
func (srv *realtimeService) authenticated(ctx context.Context, session *entity.Session) bool {
	if !session.Active(srv.now()) {
		return false
	}

	current := srv.sessions.CurrentSession(ctx)

	return current != nil && current.ID == session.ID && current.UserID == session.UserID
}

// StopRealtime closes every subscription of sessionID. Stopping an unknown session is a no-op.
func (srv *realtimeService) StopRealtime(ctx context.Context, sessionID uuid.UUID) error {
	srv.mu.Lock()
	entry, ok := srv.active[sessionID]
	delete(srv.active, sessionID)
	srv.mu.Unlock()

	if !ok {
		srv.log(ctx).Debug("[Realtime] Stop for inactive session", slog.String("session_id", sessionID.String()))

		return nil
	}

	if err := srv.subscriber.Stop(entry.subs); err != nil {
		// Closing is best effort; the session is gone either way.
		srv.log(ctx).Warn("[Realtime] Session stopped with close errors",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	srv.log(ctx).Info("[Realtime] Session stopped", slog.String("session_id", sessionID.String()))

	return nil
}

// RestartRealtime re-subscribes every collection of an active session.
func (srv *realtimeService) RestartRealtime(ctx context.Context, sessionID uuid.UUID) (usecase.RealtimeSubscriptions, error) {
	srv.mu.Lock()
	entry, ok := srv.active[sessionID]
	srv.mu.Unlock()

	if !ok {
		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "restart realtime")
	}
	if !entry.session.Active(srv.now()) {
		_ = srv.StopRealtime(ctx, sessionID)

		return nil, errors.Wrap(domainerrors.ErrNoSession, "restart realtime")
	}

	if err := srv.subscriber.Restart(ctx, entry.subs); err != nil {
		return nil, errors.Wrap(err, "failed to restart change feed subscriptions")
	}

	return entry.subs, nil
}

// RouteChange returns the cache keys event invalidates without touching the cache.
func (srv *realtimeService) RouteChange(event *entity.ChangeEvent) []entity.CacheKey {
	return srv.router.Route(event)
}

// AlertActiveSessions offers event to the dispatcher for every active session and counts dispatched alerts.
func (srv *realtimeService) AlertActiveSessions(ctx context.Context, event *entity.ChangeEvent) int {
	srv.reapExpired(ctx)

	srv.mu.Lock()
	targets := make([]entity.AlertTarget, 0, len(srv.active))
	for _, entry := range srv.active {
		targets = append(targets, entry.session.AlertTarget())
	}
	srv.mu.Unlock()

	alerted := 0
	for _, target := range targets {
		if srv.dispatcher.MaybeAlert(ctx, event, target) {
			alerted++
		}
	}

	return alerted
}

// reapExpired stops sessions whose token expired since they started.
func (srv *realtimeService) reapExpired(ctx context.Context) {
	now := srv.now()

	srv.mu.Lock()
	var expired []uuid.UUID
	for id, entry := range srv.active {
		if !entry.session.Active(now) {
			expired = append(expired, id)
		}
	}
	srv.mu.Unlock()

	for _, id := range expired {
		srv.log(ctx).Info("[Realtime] Session expired", slog.String("session_id", id.String()))
		_ = srv.StopRealtime(ctx, id)
	}
}

// Shutdown stops every session, waits for in-flight alerts and releases the sound handle.
func (srv *realtimeService) Shutdown(ctx context.Context) error {
	srv.mu.Lock()
	ids := make([]uuid.UUID, 0, len(srv.active))
	for id := range srv.active {
		ids = append(ids, id)
	}
	srv.mu.Unlock()

	for _, id := range ids {
		_ = srv.StopRealtime(ctx, id)
	}

	srv.dispatcher.Wait()

	if err := srv.dispatcher.Cleanup(ctx); err != nil {
		return errors.Wrap(err, "failed to release alert resources")
	}

	return nil
}
