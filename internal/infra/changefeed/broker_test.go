package changefeed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBroker_FansOutToCollectionSubscribers(t *testing.T) {
	broker := NewBroker(4, discardLogger())

	first, err := broker.Subscribe(context.Background(), entity.CollectionNotifications)
	require.NoError(t, err)
	second, err := broker.Subscribe(context.Background(), entity.CollectionNotifications)
	require.NoError(t, err)
	other, err := broker.Subscribe(context.Background(), entity.CollectionDocuments)
	require.NoError(t, err)

	event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeInsert, nil, entity.Record{"id": "n1"})
	delivered := broker.Publish(event)

	assert.Equal(t, 2, delivered)
	assert.Same(t, event, <-first.Events())
	assert.Same(t, event, <-second.Events())
	assert.Empty(t, other.Events())
}

func TestBroker_PreservesOrderPerCollection(t *testing.T) {
	broker := NewBroker(8, discardLogger())
	sub, err := broker.Subscribe(context.Background(), entity.CollectionInventoryItems)
	require.NoError(t, err)

	var ids []string
	for range 5 {
		event := entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeUpdate, entity.Record{}, entity.Record{"id": "i"})
		ids = append(ids, event.ID)
		broker.Publish(event)
	}

	for _, id := range ids {
		assert.Equal(t, id, (<-sub.Events()).ID)
	}
}

func TestBroker_FullBufferReportsDrop(t *testing.T) {
	broker := NewBroker(1, discardLogger())
	sub, err := broker.Subscribe(context.Background(), entity.CollectionEvents)
	require.NoError(t, err)

	broker.Publish(entity.NewChangeEvent(entity.CollectionEvents, entity.ChangeInsert, nil, entity.Record{"id": "1"}))
	delivered := broker.Publish(entity.NewChangeEvent(entity.CollectionEvents, entity.ChangeInsert, nil, entity.Record{"id": "2"}))

	assert.Zero(t, delivered)
	select {
	case err := <-sub.Errors():
		assert.ErrorIs(t, err, ErrEventDropped)
	case <-time.After(time.Second):
		t.Fatal("expected a drop error")
	}
}

func TestBroker_ClosedSubscriptionStopsReceiving(t *testing.T) {
	broker := NewBroker(4, discardLogger())
	sub, err := broker.Subscribe(context.Background(), entity.CollectionUsers)
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	delivered := broker.Publish(entity.NewChangeEvent(entity.CollectionUsers, entity.ChangeUpdate, entity.Record{}, entity.Record{"id": "u"}))

	assert.Zero(t, delivered)
	assert.Empty(t, sub.Events())
	select {
	case <-sub.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestBroker_SubscribeAfterClose(t *testing.T) {
	broker := NewBroker(4, discardLogger())
	sub, err := broker.Subscribe(context.Background(), entity.CollectionUsers)
	require.NoError(t, err)

	require.NoError(t, broker.Close())

	<-sub.Done()
	_, err = broker.Subscribe(context.Background(), entity.CollectionUsers)
	assert.ErrorIs(t, err, ErrTransportClosed)
}
