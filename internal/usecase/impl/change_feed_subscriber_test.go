package impl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	mockSvc "creaglass/internal/mocks/service"
	mockUc "creaglass/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriberFixtures struct {
	subscriber *changeFeedSubscriber
	transport  *mockSvc.MockChangeFeedTransport
	router     *mockUc.MockInvalidationRouter
	dispatcher *mockUc.MockAlertDispatcher

	mu     sync.Mutex
	opened map[entity.Collection][]*fakeSubscription
}

func createTestSubscriber(t *testing.T, failing ...entity.Collection) *subscriberFixtures {
	f := &subscriberFixtures{
		transport:  mockSvc.NewMockChangeFeedTransport(t),
		router:     mockUc.NewMockInvalidationRouter(t),
		dispatcher: mockUc.NewMockAlertDispatcher(t),
		opened:     make(map[entity.Collection][]*fakeSubscription),
	}
	f.subscriber = NewChangeFeedSubscriber(ChangeFeedSubscriberParams{
		Transport:  f.transport,
		Router:     f.router,
		Dispatcher: f.dispatcher,
		Logger:     newDiscardLogger(),
	}).(*changeFeedSubscriber)

	f.transport.EXPECT().
		Subscribe(mock.Anything, mock.AnythingOfType("entity.Collection")).
		RunAndReturn(func(_ context.Context, collection entity.Collection) (service.Subscription, error) {
			for _, c := range failing {
				if c == collection {
					return nil, errors.New("channel rejected")
				}
			}
			sub := newFakeSubscription(collection)
			f.mu.Lock()
			f.opened[collection] = append(f.opened[collection], sub)
			f.mu.Unlock()

			return sub, nil
		}).
		Maybe()

	return f
}

func (f *subscriberFixtures) latest(collection entity.Collection) *fakeSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.opened[collection]
	if len(subs) == 0 {
		return nil
	}

	return subs[len(subs)-1]
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Platform:  entity.PlatformWeb,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event handling")
	}
}

func TestChangeFeedSubscriber_Start_OpensEveryWatchedCollection(t *testing.T) {
	f := createTestSubscriber(t)
	session := testSession()

	subs, err := f.subscriber.Start(context.Background(), session)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.subscriber.Stop(subs) })

	assert.Equal(t, session.ID, subs.SessionID())
	assert.Equal(t, session.UserID, subs.UserID())
	assert.Equal(t, entity.WatchedCollections(), subs.Collections())
	assert.Equal(t, len(entity.WatchedCollections()), subs.Open())
}

func TestChangeFeedSubscriber_Start_SkipsFailedCollection(t *testing.T) {
	f := createTestSubscriber(t, entity.CollectionEvents)

	subs, err := f.subscriber.Start(context.Background(), testSession())
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.subscriber.Stop(subs) })

	assert.Equal(t, len(entity.WatchedCollections())-1, subs.Open())
	assert.Nil(t, f.latest(entity.CollectionEvents))
}

func TestChangeFeedSubscriber_Start_RequiresSession(t *testing.T) {
	f := createTestSubscriber(t)

	subs, err := f.subscriber.Start(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, subs)
}

func TestChangeFeedSubscriber_NotificationInsertRoutesAndAlerts(t *testing.T) {
	f := createTestSubscriber(t)
	session := testSession()
	event := notificationInsert(nil, "info", nil)

	f.router.EXPECT().Apply(mock.Anything, event).Return(nil).Once()

	alerted := make(chan struct{})
	f.dispatcher.EXPECT().
		MaybeAlert(mock.Anything, event, session.AlertTarget()).
		Run(func(context.Context, *entity.ChangeEvent, entity.AlertTarget) { close(alerted) }).
		Return(true).
		Once()

	subs, err := f.subscriber.Start(context.Background(), session)
	require.NoError(t, err)

	f.latest(entity.CollectionNotifications).events <- event
	waitSignal(t, alerted)

	require.NoError(t, f.subscriber.Stop(subs))
}

func TestChangeFeedSubscriber_MalformedEventIsDropped(t *testing.T) {
	f := createTestSubscriber(t)
	valid := entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeUpdate, entity.Record{}, entity.Record{"id": "i1"})

	routed := make(chan struct{})
	f.router.EXPECT().
		Apply(mock.Anything, valid).
		Run(func(context.Context, *entity.ChangeEvent) { close(routed) }).
		Return(nil).
		Once()

	subs, err := f.subscriber.Start(context.Background(), testSession())
	require.NoError(t, err)

	sub := f.latest(entity.CollectionInventoryItems)
	sub.events <- &entity.ChangeEvent{Collection: entity.CollectionInventoryItems, Kind: "TRUNCATE"}
	sub.errs <- errors.New("undecodable payload")
	sub.events <- valid
	waitSignal(t, routed)

	require.NoError(t, f.subscriber.Stop(subs))
}

func TestChangeFeedSubscriber_Stop_IsIdempotent(t *testing.T) {
	f := createTestSubscriber(t)

	subs, err := f.subscriber.Start(context.Background(), testSession())
	require.NoError(t, err)

	require.NoError(t, f.subscriber.Stop(subs))
	require.NoError(t, f.subscriber.Stop(subs))

	assert.Equal(t, 0, subs.Open())
	for _, collection := range entity.WatchedCollections() {
		assert.Equal(t, 1, f.latest(collection).closeCount(), string(collection))
	}
}

func TestChangeFeedSubscriber_Stop_ContinuesAfterCloseFailure(t *testing.T) {
	f := createTestSubscriber(t)

	subs, err := f.subscriber.Start(context.Background(), testSession())
	require.NoError(t, err)
	f.latest(entity.CollectionUsers).closeErr = errors.New("socket reset")

	err = f.subscriber.Stop(subs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "socket reset")
	for _, collection := range entity.WatchedCollections() {
		assert.Equal(t, 1, f.latest(collection).closeCount(), string(collection))
	}
}

func TestChangeFeedSubscriber_Stop_RejectsForeignSubscriptions(t *testing.T) {
	f := createTestSubscriber(t)

	require.NoError(t, f.subscriber.Stop(nil))
	assert.ErrorIs(t, f.subscriber.Stop(mockUc.NewMockRealtimeSubscriptions(t)), ErrForeignSubscriptions)
}

func TestChangeFeedSubscriber_Restart_ReopensEveryCollection(t *testing.T) {
	f := createTestSubscriber(t)

	subs, err := f.subscriber.Start(context.Background(), testSession())
	require.NoError(t, err)
	first := f.latest(entity.CollectionDocuments)

	require.NoError(t, f.subscriber.Restart(context.Background(), subs))
	t.Cleanup(func() { _ = f.subscriber.Stop(subs) })

	assert.Equal(t, 1, first.closeCount())
	assert.NotSame(t, first, f.latest(entity.CollectionDocuments))
	assert.Equal(t, len(entity.WatchedCollections()), subs.Open())
}
