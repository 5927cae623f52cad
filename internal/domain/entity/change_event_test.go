package entity

import (
	"testing"

	"creaglass/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWireChange_Insert(t *testing.T) {
	payload := []byte(`{
		"schema": "public",
		"table": "notifications",
		"type": "INSERT",
		"record": {"id": "n1", "target_user_id": null, "type": "inventory.lowStock"},
		"old_record": null,
		"commit_timestamp": "2024-05-01T10:00:00.5Z"
	}`)

	event, err := DecodeWireChange(payload)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, CollectionNotifications, event.Collection)
	assert.Equal(t, ChangeInsert, event.Kind)
	assert.Nil(t, event.Before)
	assert.False(t, event.After.Has("target_user_id"))
	assert.Equal(t, 2024, event.CommitTimestamp.Year())
}

func TestDecodeWireChange_LowercaseType(t *testing.T) {
	event, err := DecodeWireChange([]byte(`{"table":"users","type":"delete","old_record":{"id":"u1"}}`))

	require.NoError(t, err)
	assert.Equal(t, ChangeDelete, event.Kind)
	id, ok := event.Before.String("id")
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}

func TestDecodeWireChange_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"table":`},
		{"missing table", `{"type":"INSERT","record":{"id":"1"}}`},
		{"unknown kind", `{"table":"users","type":"TRUNCATE"}`},
		{"insert without record", `{"table":"users","type":"INSERT"}`},
		{"delete without old record", `{"table":"users","type":"DELETE","record":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWireChange([]byte(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedEvent))
		})
	}
}

func TestRecord_Accessors(t *testing.T) {
	record := Record{
		"name":    "Float glass",
		"stock":   "3.5",
		"count":   float64(2),
		"missing": nil,
	}

	name, ok := record.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Float glass", name)

	stock, ok := record.Float("stock")
	assert.True(t, ok)
	assert.InDelta(t, 3.5, stock, 0.0001)

	count, ok := record.String("count")
	assert.True(t, ok)
	assert.Equal(t, "2", count)

	_, ok = record.String("missing")
	assert.False(t, ok)

	var empty Record
	assert.False(t, empty.Has("anything"))
}

func TestChangeEvent_ToWireRoundTrip(t *testing.T) {
	event := NewChangeEvent(CollectionInventoryItems, ChangeUpdate, Record{"stock": float64(5)}, Record{"stock": float64(2)})

	wire := event.ToWire()
	back, err := wire.ToChangeEvent()

	require.NoError(t, err)
	assert.Equal(t, event.Collection, back.Collection)
	assert.Equal(t, event.Kind, back.Kind)
	assert.Equal(t, event.After, back.After)
	assert.True(t, event.CommitTimestamp.Equal(back.CommitTimestamp))
}

func TestCacheKey_HasPrefix(t *testing.T) {
	key := NewCacheKey("notifications", "unreadCount", "u1")

	assert.True(t, key.HasPrefix(NewCacheKey("notifications")))
	assert.True(t, key.HasPrefix(key))
	assert.False(t, key.HasPrefix(NewCacheKey("notifications", "u1")))
	assert.False(t, NewCacheKey("users").HasPrefix(NewCacheKey("users", "x")))
	assert.Equal(t, "notifications:unreadCount:u1", key.String())
}
