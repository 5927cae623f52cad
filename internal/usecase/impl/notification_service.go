package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const userNotificationsLimit = 50

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	publisher        service.ChangePublisher
	cache            service.QueryCache
	router           usecase.InvalidationRouter
	realtime         usecase.RealtimeUsecase
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Publisher        service.ChangePublisher
	Cache            service.QueryCache
	Router           usecase.InvalidationRouter
	Realtime         usecase.RealtimeUsecase
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		cache:            params.Cache,
		router:           params.Router,
		realtime:         params.Realtime,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateNotification persists the notification, publishes its insert and alerts active sessions.
func (s *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if input == nil || input.Type == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("notification type is required")
	}

	notification := &entity.Notification{
		Type:            input.Type,
		PayloadJSON:     input.Payload,
		TargetUserID:    input.TargetUserID,
		CreatedBySystem: input.CreatedBySystem,
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	s.announce(ctx, notification)

	s.log(ctx).Info("Notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("type", notification.Type),
		slog.Bool("broadcast", notification.TargetUserID == nil),
	)

	return notification, nil
}

// announce invalidates the routed keys, publishes the insert and hands it to the alert side effect.
// None of them fails the write.
func (s *notificationService) announce(ctx context.Context, notification *entity.Notification) {
	event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeInsert, nil, notification.Record())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	// Sessions re-route the event when the feed delivers it; this covers a process without any.
	s.router.Apply(ctx, event)
	publishChange(ctx, s.log(ctx), s.publisher, event)

	alerted := s.realtime.AlertActiveSessions(ctx, event)
	s.log(ctx).Debug("Notification alerts dispatched",
		slog.String("notification_id", notification.ID.String()),
		slog.Int("alerted", alerted),
	)
}

// ListUserNotifications returns broadcast and targeted notifications, newest first, through the query cache.
func (s *notificationService) ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := readThrough(ctx, s.cache, s.log(ctx), notificationsKey(userID),
		func(ctx context.Context) ([]*entity.Notification, error) {
			return s.notificationRepo.FindUserNotifications(ctx, userID, userNotificationsLimit)
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// GetUnreadCount counts notifications without a receipt of userID, through the query cache.
func (s *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := readThrough(ctx, s.cache, s.log(ctx), unreadCountKey(userID),
		func(ctx context.Context) (int64, error) {
			return s.notificationRepo.CountUnread(ctx, userID)
		})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkAsRead records the receipt once. Later calls keep the first read time.
func (s *notificationService) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, "mark as read")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load notification")
	}
	if !notification.AddressedTo(userID) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification is not addressed to user")
	}

	read := &entity.NotificationRead{
		NotificationID: notificationID,
		UserID:         userID,
		ReadAt:         s.now().UTC(),
	}
	created, err := s.notificationRepo.CreateRead(ctx, read)
	if err != nil {
		return errors.Wrap(err, "failed to create read receipt")
	}
	if !created {
		return nil
	}

	// Receipts are not a watched collection, so the viewer's keys are refreshed here.
	invalidateKeys(ctx, s.log(ctx), s.cache, notificationsKey(userID), unreadCountKey(userID))

	return nil
}

// ClearUserNotifications removes the notifications targeted at the user. Receipts of broadcasts stay,
// so a broadcast the user has read never turns unread again.
func (s *notificationService) ClearUserNotifications(ctx context.Context, userID uuid.UUID) error {
	var deleted []*entity.Notification
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewNotificationRepository()

		var err error
		deleted, err = repo.DeleteTargetedNotifications(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete targeted notifications")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to clear notifications", slog.String("user_id", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear notifications")
	}

	for _, notification := range deleted {
		event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeDelete, notification.Record(), nil)
		publishChange(ctx, s.log(ctx), s.publisher, event)
	}
	invalidateKeys(ctx, s.log(ctx), s.cache, notificationsKey(userID), unreadCountKey(userID))

	s.log(ctx).Info("Notifications cleared",
		slog.String("user_id", userID.String()),
		slog.Int("deleted", len(deleted)),
	)

	return nil
}

// publishChange emits event on the change feed. Publish failures are logged: the row is already committed.
func publishChange(ctx context.Context, logger *slog.Logger, publisher service.ChangePublisher, event *entity.ChangeEvent) {
	if err := publisher.PublishChange(ctx, event); err != nil {
		logger.Warn("Failed to publish change event",
			slog.String("event_id", event.ID),
			slog.String("collection", string(event.Collection)),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
	}
}
