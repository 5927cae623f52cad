package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrForeignSubscriptions is returned when Stop or Restart receives a value this subscriber did not create.
var ErrForeignSubscriptions = errors.New("subscriptions were not created by this subscriber")

// feedSubscriptions is the owned handle set of one session.
type feedSubscriptions struct {
	session *entity.Session
	watched []entity.Collection

	mu      sync.Mutex
	handles map[entity.Collection]service.Subscription
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped bool
}

func (s *feedSubscriptions) SessionID() uuid.UUID { return s.session.ID }

func (s *feedSubscriptions) UserID() uuid.UUID { return s.session.UserID }

func (s *feedSubscriptions) Collections() []entity.Collection {
	return append([]entity.Collection(nil), s.watched...)
}

func (s *feedSubscriptions) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handles)
}

type changeFeedSubscriber struct {
	transport  service.ChangeFeedTransport
	router     usecase.InvalidationRouter
	dispatcher usecase.AlertDispatcher
	logger     *slog.Logger
}

// ChangeFeedSubscriberParams holds dependencies for the subscriber, injected by Fx.
type ChangeFeedSubscriberParams struct {
	fx.In

	Transport  service.ChangeFeedTransport
	Router     usecase.InvalidationRouter
	Dispatcher usecase.AlertDispatcher
	Logger     *slog.Logger
}

// NewChangeFeedSubscriber is the constructor for changeFeedSubscriber.
func NewChangeFeedSubscriber(params ChangeFeedSubscriberParams) usecase.ChangeFeedSubscriber {
	return &changeFeedSubscriber{
		transport:  params.Transport,
		router:     params.Router,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

func (s *changeFeedSubscriber) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Start opens one subscription per watched collection. A collection that fails to open is logged and skipped.
func (s *changeFeedSubscriber) Start(ctx context.Context, session *entity.Session) (usecase.RealtimeSubscriptions, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}

	subs := &feedSubscriptions{
		session: session,
		watched: entity.WatchedCollections(),
	}
	s.open(ctx, subs)

	return subs, nil
}

// open subscribes every watched collection and starts one drain goroutine per handle.
func (s *changeFeedSubscriber) open(ctx context.Context, subs *feedSubscriptions) {
	logger := s.log(ctx).With(slog.String("session_id", subs.session.ID.String()))

	// Drains outlive the request that started them.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	subs.mu.Lock()
	defer subs.mu.Unlock()

	subs.cancel = cancel
	subs.stopped = false
	subs.handles = make(map[entity.Collection]service.Subscription, len(subs.watched))

	for _, collection := range subs.watched {
		handle, err := s.transport.Subscribe(runCtx, collection)
		if err != nil {
			logger.Warn("[Realtime] Failed to subscribe",
				slog.String("collection", string(collection)),
				slog.Any("error", err),
			)

			continue
		}

		subs.handles[collection] = handle
		subs.wg.Add(1)
		go s.drain(runCtx, subs, collection, handle)
	}

	logger.Info("[Realtime] Subscriptions opened",
		slog.Int("open", len(subs.handles)),
		slog.Int("watched", len(subs.watched)),
	)
}

// drain handles the events of one collection in arrival order.
func (s *changeFeedSubscriber) drain(ctx context.Context, subs *feedSubscriptions, collection entity.Collection, handle service.Subscription) {
	defer subs.wg.Done()

	logger := s.log(ctx).With(
		slog.String("session_id", subs.session.ID.String()),
		slog.String("collection", string(collection)),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-handle.Done():
			return
		case err := <-handle.Errors():
			logger.Warn("[Realtime] Dropped change feed payload", slog.Any("error", err))
		case event := <-handle.Events():
			s.handle(ctx, logger, subs.session, event)
		}
	}
}

func (s *changeFeedSubscriber) handle(ctx context.Context, logger *slog.Logger, session *entity.Session, event *entity.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Realtime] Change event handling panicked", slog.Any("panic", r))
		}
	}()

	if err := event.Validate(); err != nil {
		logger.Warn("[Realtime] Dropped malformed change event", slog.Any("error", err))

		return
	}

	s.router.Apply(ctx, event)

	if event.Collection == entity.CollectionNotifications && event.Kind == entity.ChangeInsert {
		s.dispatcher.MaybeAlert(ctx, event, session.AlertTarget())
	}
}

// Stop closes every open handle. Close failures are logged and do not stop the remaining closes.
func (s *changeFeedSubscriber) Stop(subs usecase.RealtimeSubscriptions) error {
	if subs == nil {
		return nil
	}
	owned, ok := subs.(*feedSubscriptions)
	if !ok {
		return ErrForeignSubscriptions
	}
	if owned == nil {
		return nil
	}

	return s.close(owned)
}

func (s *changeFeedSubscriber) close(subs *feedSubscriptions) error {
	subs.mu.Lock()
	if subs.stopped {
		subs.mu.Unlock()

		return nil
	}
	subs.stopped = true
	handles := subs.handles
	subs.handles = nil
	cancel := subs.cancel
	subs.mu.Unlock()

	var errs []error
	for collection, handle := range handles {
		if err := handle.Close(); err != nil {
			s.logger.Warn("[Realtime] Failed to close subscription",
				slog.String("session_id", subs.session.ID.String()),
				slog.String("collection", string(collection)),
				slog.Any("error", err),
			)
			errs = append(errs, errors.Wrapf(err, "close %s", collection))
		}
	}

	if cancel != nil {
		cancel()
	}
	subs.wg.Wait()

	s.logger.Info("[Realtime] Subscriptions closed",
		slog.String("session_id", subs.session.ID.String()),
		slog.Int("closed", len(handles)),
	)

	return errors.Join(errs...)
}

// Restart closes and re-opens every previously watched collection.
func (s *changeFeedSubscriber) Restart(ctx context.Context, subs usecase.RealtimeSubscriptions) error {
	owned, ok := subs.(*feedSubscriptions)
	if !ok || owned == nil {
		return ErrForeignSubscriptions
	}

	if err := s.close(owned); err != nil {
		s.log(ctx).Warn("[Realtime] Restart closed with errors", slog.Any("error", err))
	}
	s.open(ctx, owned)

	return nil
}
