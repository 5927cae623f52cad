package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/cache"
	mockRepo "creaglass/internal/mocks/repository"
	mockSvc "creaglass/internal/mocks/service"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockChangePublisher
	cache            *mockSvc.MockQueryCache
	realtime         *mockUc.MockRealtimeUsecase
}

func createTestNotificationService(t *testing.T, cache *mockSvc.MockQueryCache) notificationServiceFixtures {
	f := notificationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockChangePublisher(t),
		cache:            cache,
		realtime:         mockUc.NewMockRealtimeUsecase(t),
	}
	f.service = NewNotificationService(NotificationServiceParams{
		TxManager:        f.txManager,
		NotificationRepo: f.notificationRepo,
		Publisher:        f.publisher,
		Cache:            cache,
		Router:           NewInvalidationRouter(InvalidationRouterParams{Cache: cache, Logger: newDiscardLogger()}),
		Realtime:         f.realtime,
		Logger:           newDiscardLogger(),
	}).(*notificationService)

	return f
}

func changeOn(collection entity.Collection, kind entity.ChangeKind) interface{} {
	return mock.MatchedBy(func(event *entity.ChangeEvent) bool {
		return event.Collection == collection && event.Kind == kind
	})
}

func TestNotificationService_CreateNotification(t *testing.T) {
	f := createTestNotificationService(t, newMissCache(t))
	ctx := context.Background()
	target := uuid.New()
	id := uuid.New()

	f.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			notification.ID = id
			notification.CreatedAt = time.Now()
		}).
		Return(nil).
		Once()
	f.publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionNotifications, entity.ChangeInsert)).Return(nil).Once()
	f.realtime.EXPECT().
		AlertActiveSessions(ctx, mock.MatchedBy(func(event *entity.ChangeEvent) bool {
			userID, _ := event.After.String("target_user_id")
			notificationID, _ := event.After.String("id")

			return userID == target.String() && notificationID == id.String()
		})).
		Return(1).
		Once()

	notification, err := f.service.CreateNotification(ctx, &usecase.CreateNotificationInput{
		Type:         "info",
		Payload:      json.RawMessage(`{"text":"hi"}`),
		TargetUserID: &target,
	})

	require.NoError(t, err)
	assert.Equal(t, id, notification.ID)
	assert.Equal(t, &target, notification.TargetUserID)
}

func TestNotificationService_CreateNotification_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestNotificationService(t, newMissCache(t))
	ctx := context.Background()

	f.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishChange(ctx, mock.Anything).Return(errors.New("broker closed")).Once()
	f.realtime.EXPECT().AlertActiveSessions(ctx, mock.Anything).Return(0).Once()

	_, err := f.service.CreateNotification(ctx, &usecase.CreateNotificationInput{Type: "info", CreatedBySystem: true})

	require.NoError(t, err)
}

func TestNotificationService_CreateNotification_RequiresType(t *testing.T) {
	f := createTestNotificationService(t, newMissCache(t))

	_, err := f.service.CreateNotification(context.Background(), &usecase.CreateNotificationInput{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestNotificationService_CreateNotification_RefreshesCachedUnreadCount(t *testing.T) {
	queryCache := cache.NewMemoryCache(time.Minute)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockChangePublisher(t)
	realtime := mockUc.NewMockRealtimeUsecase(t)
	service := NewNotificationService(NotificationServiceParams{
		TxManager:        mockRepo.NewMockTransactionManager(t),
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Cache:            queryCache,
		Router:           NewInvalidationRouter(InvalidationRouterParams{Cache: queryCache, Logger: newDiscardLogger()}),
		Realtime:         realtime,
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(0, nil).Once()
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, notification *entity.Notification) error {
			notification.ID = uuid.New()
			return nil
		}).Once()
	publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionNotifications, entity.ChangeInsert)).Return(nil).Once()
	realtime.EXPECT().AlertActiveSessions(ctx, mock.Anything).Return(0).Once()
	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(1, nil).Once()

	before, err := service.GetUnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before)

	_, err = service.CreateNotification(ctx, &usecase.CreateNotificationInput{Type: "info", TargetUserID: &userID})
	require.NoError(t, err)

	after, err := service.GetUnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after)
}

func TestNotificationService_ListUserNotifications_ServesFromCache(t *testing.T) {
	cache := mockSvc.NewMockQueryCache(t)
	f := createTestNotificationService(t, cache)
	ctx := context.Background()
	userID := uuid.New()
	cached := []*entity.Notification{{ID: uuid.New(), Type: "info"}}

	cache.EXPECT().
		Read(ctx, notificationsKey(userID), mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.CacheKey, dest any) (bool, error) {
			*(dest.(*[]*entity.Notification)) = cached

			return true, nil
		}).
		Once()

	notifications, err := f.service.ListUserNotifications(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, cached, notifications)
}

func TestNotificationService_GetUnreadCount_LoadsOnMiss(t *testing.T) {
	cache := mockSvc.NewMockQueryCache(t)
	f := createTestNotificationService(t, cache)
	ctx := context.Background()
	userID := uuid.New()

	cache.EXPECT().Read(ctx, unreadCountKey(userID), mock.Anything).Return(false, nil).Once()
	f.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil).Once()
	cache.EXPECT().Write(ctx, unreadCountKey(userID), int64(3)).Return(nil).Once()

	count, err := f.service.GetUnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	notificationID := uuid.New()

	t.Run("missing notification", func(t *testing.T) {
		f := createTestNotificationService(t, mockSvc.NewMockQueryCache(t))
		f.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound).Once()

		err := f.service.MarkAsRead(ctx, notificationID, userID)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})

	t.Run("notification of another user", func(t *testing.T) {
		f := createTestNotificationService(t, mockSvc.NewMockQueryCache(t))
		f.notificationRepo.EXPECT().
			FindNotificationByID(ctx, notificationID).
			Return(&entity.Notification{ID: notificationID, TargetUserID: &otherUser}, nil).
			Once()

		err := f.service.MarkAsRead(ctx, notificationID, userID)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})

	t.Run("first read invalidates the viewer's keys", func(t *testing.T) {
		cache := mockSvc.NewMockQueryCache(t)
		f := createTestNotificationService(t, cache)
		f.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil).Once()
		f.notificationRepo.EXPECT().
			CreateRead(ctx, mock.MatchedBy(func(read *entity.NotificationRead) bool {
				return read.NotificationID == notificationID && read.UserID == userID && !read.ReadAt.IsZero()
			})).
			Return(true, nil).
			Once()
		cache.EXPECT().Invalidate(ctx, notificationsKey(userID)).Return(nil).Once()
		cache.EXPECT().Invalidate(ctx, unreadCountKey(userID)).Return(nil).Once()

		require.NoError(t, f.service.MarkAsRead(ctx, notificationID, userID))
	})

	t.Run("repeated read keeps the first receipt", func(t *testing.T) {
		f := createTestNotificationService(t, mockSvc.NewMockQueryCache(t))
		f.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil).Once()
		f.notificationRepo.EXPECT().CreateRead(ctx, mock.Anything).Return(false, nil).Once()

		require.NoError(t, f.service.MarkAsRead(ctx, notificationID, userID))
	})
}

func TestNotificationService_ClearUserNotifications(t *testing.T) {
	f := createTestNotificationService(t, newMissCache(t))
	ctx := context.Background()
	userID := uuid.New()
	deleted := []*entity.Notification{
		{ID: uuid.New(), Type: "info", TargetUserID: &userID},
		{ID: uuid.New(), Type: "info", TargetUserID: &userID},
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockNotificationRepository(t)

			factory.EXPECT().NewNotificationRepository().Return(txRepo).Once()
			txRepo.EXPECT().DeleteTargetedNotifications(ctx, userID).Return(deleted, nil).Once()

			return fn(factory)
		}).
		Once()
	f.publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionNotifications, entity.ChangeDelete)).Return(nil).Times(2)

	require.NoError(t, f.service.ClearUserNotifications(ctx, userID))
}

func TestNotificationService_ClearUserNotifications_RollsBack(t *testing.T) {
	f := createTestNotificationService(t, mockSvc.NewMockQueryCache(t))
	ctx := context.Background()
	userID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockNotificationRepository(t)

			factory.EXPECT().NewNotificationRepository().Return(txRepo).Once()
			txRepo.EXPECT().DeleteTargetedNotifications(ctx, userID).Return(nil, errors.New("deadlock")).Once()

			return fn(factory)
		}).
		Once()

	err := f.service.ClearUserNotifications(ctx, userID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}
