package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockSvc "creaglass/internal/mocks/service"
	mockUc "creaglass/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type realtimeServiceFixtures struct {
	service    *realtimeService
	subscriber *mockUc.MockChangeFeedSubscriber
	router     *mockUc.MockInvalidationRouter
	dispatcher *mockUc.MockAlertDispatcher
	sessions   *mockSvc.MockSessionProvider
}

func createTestRealtimeService(t *testing.T) realtimeServiceFixtures {
	f := realtimeServiceFixtures{
		subscriber: mockUc.NewMockChangeFeedSubscriber(t),
		router:     mockUc.NewMockInvalidationRouter(t),
		dispatcher: mockUc.NewMockAlertDispatcher(t),
		sessions:   mockSvc.NewMockSessionProvider(t),
	}
	f.service = NewRealtimeService(RealtimeServiceParams{
		Subscriber: f.subscriber,
		Router:     f.router,
		Dispatcher: f.dispatcher,
		Sessions:   f.sessions,
		Logger:     newDiscardLogger(),
	}).(*realtimeService)

	return f
}

func TestRealtimeService_StartRealtime_RequiresActiveSession(t *testing.T) {
	ctx := context.Background()
	session := testSession()

	expired := testSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	other := testSession()

	tests := []struct {
		name    string
		session *entity.Session
		current *entity.Session
	}{
		{name: "nil session", session: nil, current: session},
		{name: "expired session", session: expired, current: expired},
		{name: "no session on the request", session: session, current: nil},
		{name: "session of another request", session: session, current: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestRealtimeService(t)
			f.sessions.EXPECT().CurrentSession(ctx).Return(tt.current).Maybe()

			subs, err := f.service.StartRealtime(ctx, tt.session)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrNoSession)
			assert.Nil(t, subs)
		})
	}
}

func TestRealtimeService_StartRealtime_IsIdempotentPerSession(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	session := testSession()
	subs := mockUc.NewMockRealtimeSubscriptions(t)

	f.sessions.EXPECT().CurrentSession(ctx).Return(session).Times(2)
	f.subscriber.EXPECT().Start(ctx, session).Return(subs, nil).Once()

	first, err := f.service.StartRealtime(ctx, session)
	require.NoError(t, err)
	second, err := f.service.StartRealtime(ctx, session)
	require.NoError(t, err)

	assert.Same(t, subs, first)
	assert.Same(t, subs, second)
}

func TestRealtimeService_StopRealtime_LogsCloseErrors(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	session := testSession()
	subs := mockUc.NewMockRealtimeSubscriptions(t)

	f.sessions.EXPECT().CurrentSession(ctx).Return(session).Once()
	f.subscriber.EXPECT().Start(ctx, session).Return(subs, nil).Once()
	f.subscriber.EXPECT().Stop(subs).Return(errors.New("close users: socket reset")).Once()

	_, err := f.service.StartRealtime(ctx, session)
	require.NoError(t, err)

	require.NoError(t, f.service.StopRealtime(ctx, session.ID))
	// The session is gone: a second stop is a no-op.
	require.NoError(t, f.service.StopRealtime(ctx, session.ID))
}

func TestRealtimeService_RestartRealtime(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	session := testSession()
	subs := mockUc.NewMockRealtimeSubscriptions(t)

	_, err := f.service.RestartRealtime(ctx, session.ID)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	f.sessions.EXPECT().CurrentSession(ctx).Return(session).Once()
	f.subscriber.EXPECT().Start(ctx, session).Return(subs, nil).Once()
	f.subscriber.EXPECT().Restart(ctx, subs).Return(nil).Once()

	_, err = f.service.StartRealtime(ctx, session)
	require.NoError(t, err)

	restarted, err := f.service.RestartRealtime(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, subs, restarted)
}

func TestRealtimeService_ExpiredSessionsAreReaped(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	session := testSession()
	subs := mockUc.NewMockRealtimeSubscriptions(t)

	f.sessions.EXPECT().CurrentSession(ctx).Return(session).Once()
	f.subscriber.EXPECT().Start(ctx, session).Return(subs, nil).Once()
	f.subscriber.EXPECT().Stop(subs).Return(nil).Once()

	_, err := f.service.StartRealtime(ctx, session)
	require.NoError(t, err)

	f.service.now = func() time.Time { return session.ExpiresAt.Add(time.Second) }

	alerted := f.service.AlertActiveSessions(ctx, notificationInsert(nil, "info", nil))

	assert.Equal(t, 0, alerted)
}

func TestRealtimeService_AlertActiveSessions(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	event := notificationInsert(nil, "info", nil)

	for range 2 {
		session := testSession()
		f.sessions.EXPECT().CurrentSession(ctx).Return(session).Once()
		f.subscriber.EXPECT().Start(ctx, session).Return(mockUc.NewMockRealtimeSubscriptions(t), nil).Once()

		_, err := f.service.StartRealtime(ctx, session)
		require.NoError(t, err)
	}

	f.dispatcher.EXPECT().MaybeAlert(ctx, event, mock.AnythingOfType("entity.AlertTarget")).Return(true).Times(2)

	assert.Equal(t, 2, f.service.AlertActiveSessions(ctx, event))
}

func TestRealtimeService_RouteChange(t *testing.T) {
	f := createTestRealtimeService(t)
	event := notificationInsert(nil, "info", nil)
	keys := []entity.CacheKey{entity.NewCacheKey("notifications")}

	f.router.EXPECT().Route(event).Return(keys).Once()

	assert.Equal(t, keys, f.service.RouteChange(event))
}

func TestRealtimeService_Shutdown(t *testing.T) {
	f := createTestRealtimeService(t)
	ctx := context.Background()
	session := testSession()
	subs := mockUc.NewMockRealtimeSubscriptions(t)

	f.sessions.EXPECT().CurrentSession(ctx).Return(session).Once()
	f.subscriber.EXPECT().Start(ctx, session).Return(subs, nil).Once()
	f.subscriber.EXPECT().Stop(subs).Return(nil).Once()
	f.dispatcher.EXPECT().Wait().Return().Once()
	f.dispatcher.EXPECT().Cleanup(ctx).Return(nil).Once()

	_, err := f.service.StartRealtime(ctx, session)
	require.NoError(t, err)

	require.NoError(t, f.service.Shutdown(ctx))
	assert.Empty(t, f.service.active)
}
