package changefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketTransport_JoinsAndDeliversChanges(t *testing.T) {
	joined := make(chan phoenixMessage, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("apikey"))

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var msg phoenixMessage
			if err := json.Unmarshal(data, &msg); err != nil || msg.Event != "phx_join" {
				continue
			}
			joined <- msg

			change := `{"topic":"` + msg.Topic + `","event":"postgres_changes","ref":null,"payload":{"data":` +
				`{"schema":"public","table":"notifications","type":"INSERT","record":{"id":"n1","target_user_id":null},"old_record":{}},"ids":[1]}}`
			if err := ws.WriteMessage(websocket.TextMessage, []byte(change)); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	transport, err := NewWebsocketTransport(WebsocketOptions{
		GatewayURL:        "ws" + strings.TrimPrefix(srv.URL, "http"),
		APIKey:            "secret",
		BufferSize:        4,
		HeartbeatInterval: time.Second,
		MinReconnect:      50 * time.Millisecond,
		MaxReconnect:      100 * time.Millisecond,
	}, discardLogger())
	require.NoError(t, err)
	defer transport.Close()

	sub, err := transport.Subscribe(context.Background(), entity.CollectionNotifications)
	require.NoError(t, err)

	select {
	case msg := <-joined:
		assert.Equal(t, "realtime:public:notifications", msg.Topic)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a join frame")
	}

	select {
	case event := <-sub.Events():
		assert.Equal(t, entity.CollectionNotifications, event.Collection)
		assert.Equal(t, entity.ChangeInsert, event.Kind)
		assert.Nil(t, event.Before)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change event")
	}
}
