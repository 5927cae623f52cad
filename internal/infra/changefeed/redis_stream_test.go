package changefeed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamFixture(t *testing.T) (*redis.Client, *redisStreamTransport) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	transport := newRedisStreamTransport(client, "realtime_", 8, 50*time.Millisecond, discardLogger())
	t.Cleanup(func() { _ = transport.Close() })

	return client, transport
}

func addWire(t *testing.T, client *redis.Client, stream string, wire *entity.WireChange) {
	t.Helper()

	data, err := json.Marshal(wire)
	require.NoError(t, err)
	require.NoError(t, client.XAdd(context.Background(), &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"data": string(data), "timestamp": time.Now().Unix()},
	}).Err())
}

func TestRedisStreamTransport_DeliversNewEntries(t *testing.T) {
	client, transport := newStreamFixture(t)
	ctx := context.Background()

	// Entries written before Subscribe are not replayed.
	addWire(t, client, "realtime_notifications", &entity.WireChange{
		Table: "notifications", Type: "INSERT", Record: entity.Record{"id": "old"},
	})

	sub, err := transport.Subscribe(ctx, entity.CollectionNotifications)
	require.NoError(t, err)

	addWire(t, client, "realtime_notifications", &entity.WireChange{
		Table: "notifications", Type: "INSERT", Record: entity.Record{"id": "new", "target_user_id": "u1"},
	})

	select {
	case event := <-sub.Events():
		assert.Equal(t, entity.ChangeInsert, event.Kind)
		id, _ := event.After.String("id")
		assert.Equal(t, "new", id)
	case <-time.After(3 * time.Second):
		t.Fatal("expected an event")
	}
}

func TestRedisStreamTransport_MalformedEntryReportsError(t *testing.T) {
	client, transport := newStreamFixture(t)
	ctx := context.Background()

	sub, err := transport.Subscribe(ctx, entity.CollectionDocuments)
	require.NoError(t, err)

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: "realtime_documents",
		Values: map[string]any{"data": "{not json"},
	}).Err())
	addWire(t, client, "realtime_documents", &entity.WireChange{
		Table: "documents", Type: "DELETE", OldRecord: entity.Record{"id": "d1"},
	})

	select {
	case err := <-sub.Errors():
		assert.ErrorIs(t, err, entity.ErrMalformedEvent)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a decode error")
	}

	select {
	case event := <-sub.Events():
		assert.Equal(t, entity.ChangeDelete, event.Kind)
	case <-time.After(3 * time.Second):
		t.Fatal("expected the following event to still arrive")
	}
}
