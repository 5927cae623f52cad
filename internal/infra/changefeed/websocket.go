package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"

	"github.com/gorilla/websocket"
)

const (
	phoenixTopicPrefix   = "realtime:public:"
	phoenixVersion       = "1.0.0"
	websocketSendBuffer  = 64
	websocketWriteWait   = 10 * time.Second
	eventPostgresChanges = "postgres_changes"
)

// ErrGatewayRejected is reported when the gateway refuses a channel join.
var ErrGatewayRejected = errors.New("realtime gateway rejected subscription")

type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref,omitempty"`
}

type phoenixReply struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

type postgresChangesPayload struct {
	Data json.RawMessage `json:"data"`
}

// websocketTransport speaks the phoenix channel protocol of a realtime gateway.
// One connection carries every collection topic and is re-established with backoff.
type websocketTransport struct {
	url          string
	heartbeat    time.Duration
	minReconnect time.Duration
	maxReconnect time.Duration
	bufferSize   int
	logger       *slog.Logger
	set          *subscriberSet

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	send   chan []byte
	ref    atomic.Uint64
}

// WebsocketOptions configures the gateway connection.
type WebsocketOptions struct {
	GatewayURL        string
	APIKey            string
	BufferSize        int
	HeartbeatInterval time.Duration
	MinReconnect      time.Duration
	MaxReconnect      time.Duration
}

// NewWebsocketTransport connects to the gateway in the background.
func NewWebsocketTransport(opts WebsocketOptions, logger *slog.Logger) (service.ChangeFeedTransport, error) {
	endpoint, err := url.Parse(opts.GatewayURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid gateway url")
	}
	query := endpoint.Query()
	if opts.APIKey != "" {
		query.Set("apikey", opts.APIKey)
	}
	query.Set("vsn", phoenixVersion)
	endpoint.RawQuery = query.Encode()

	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = 30 * time.Second
	}
	if opts.MinReconnect <= 0 {
		opts.MinReconnect = time.Second
	}
	if opts.MaxReconnect < opts.MinReconnect {
		opts.MaxReconnect = opts.MinReconnect
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &websocketTransport{
		url:          endpoint.String(),
		heartbeat:    opts.HeartbeatInterval,
		minReconnect: opts.MinReconnect,
		maxReconnect: opts.MaxReconnect,
		bufferSize:   opts.BufferSize,
		logger:       logger,
		set:          newSubscriberSet(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
		send:         make(chan []byte, websocketSendBuffer),
	}

	go t.run()

	return t, nil
}

func topicFor(collection entity.Collection) string {
	return phoenixTopicPrefix + string(collection)
}

// Subscribe joins the collection topic for its first subscriber.
func (t *websocketTransport) Subscribe(_ context.Context, collection entity.Collection) (service.Subscription, error) {
	if t.ctx.Err() != nil {
		return nil, ErrTransportClosed
	}

	topic := topicFor(collection)
	sub := newSubscription(collection, t.bufferSize)
	sub.onClose = func() {
		if t.set.remove(topic, sub) {
			t.push(topic, "phx_leave", struct{}{})
		}
	}

	if t.set.add(topic, sub) {
		t.push(topic, "phx_join", joinPayload(collection))
	}

	return sub, nil
}

func joinPayload(collection entity.Collection) any {
	return map[string]any{
		"config": map[string]any{
			"postgres_changes": []map[string]string{
				{"event": "*", "schema": "public", "table": string(collection)},
			},
		},
	}
}

func (t *websocketTransport) frame(topic, event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := json.Marshal(phoenixMessage{
		Topic:   topic,
		Event:   event,
		Payload: raw,
		Ref:     strconv.FormatUint(t.ref.Add(1), 10),
	})

	return data, errors.WithStack(err)
}

// push queues a frame. While disconnected, joins are replayed on reconnect instead.
func (t *websocketTransport) push(topic, event string, payload any) {
	data, err := t.frame(topic, event, payload)
	if err != nil {
		t.logger.Warn("[WebsocketFeed] Encode frame failed", slog.Any("error", err))

		return
	}

	select {
	case t.send <- data:
	default:
		t.logger.Warn("[WebsocketFeed] Send queue full, frame dropped",
			slog.String("topic", topic),
			slog.String("event", event),
		)
	}
}

func (t *websocketTransport) run() {
	defer close(t.done)

	backoff := t.minReconnect
	for {
		ws, _, err := websocket.DefaultDialer.DialContext(t.ctx, t.url, nil)
		if err != nil {
			if t.ctx.Err() != nil {
				return
			}
			t.logger.Warn("[WebsocketFeed] Connect failed",
				slog.Duration("retry_in", backoff),
				slog.Any("error", err),
			)
			for _, sub := range t.set.all() {
				sub.fail(errors.Wrap(err, "realtime gateway unavailable"))
			}
		} else {
			backoff = t.minReconnect
			t.handle(ws)
		}

		select {
		case <-t.ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > t.maxReconnect {
			backoff = t.maxReconnect
		}
	}
}

func (t *websocketTransport) handle(ws *websocket.Conn) {
	defer ws.Close()

	handleCtx, handleCancel := context.WithCancel(t.ctx)
	defer handleCancel()

	// Frames queued while disconnected are superseded by the joins below.
	t.drain()
	for _, topic := range t.set.channels() {
		t.push(topic, "phx_join", joinPayload(entity.Collection(topic[len(phoenixTopicPrefix):])))
	}

	go func() {
		defer handleCancel()

		ticker := time.NewTicker(t.heartbeat)
		defer ticker.Stop()

		for {
			var message []byte
			select {
			case <-handleCtx.Done():
				_ = ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(websocketWriteWait))

				return
			case message = <-t.send:
			case <-ticker.C:
				var err error
				if message, err = t.frame("phoenix", "heartbeat", struct{}{}); err != nil {
					continue
				}
			}

			_ = ws.SetWriteDeadline(time.Now().Add(websocketWriteWait))
			if err := ws.WriteMessage(websocket.TextMessage, message); err != nil {
				t.logger.Info("[WebsocketFeed] Write failed", slog.Any("error", err))

				return
			}
		}
	}()

	go func() {
		<-handleCtx.Done()
		// Unblocks ReadMessage below.
		_ = ws.Close()
	}()

	for {
		_ = ws.SetReadDeadline(time.Now().Add(2 * t.heartbeat))
		_, data, err := ws.ReadMessage()
		if err != nil {
			if t.ctx.Err() == nil {
				t.logger.Info("[WebsocketFeed] Connection lost", slog.Any("error", err))
				for _, sub := range t.set.all() {
					sub.fail(errors.Wrap(err, "realtime gateway connection lost"))
				}
			}

			return
		}

		t.receive(data)
	}
}

func (t *websocketTransport) receive(data []byte) {
	var msg phoenixMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.logger.Debug("[WebsocketFeed] Ignoring undecodable frame", slog.Any("error", err))

		return
	}

	switch msg.Event {
	case eventPostgresChanges:
		var payload postgresChangesPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			for _, sub := range t.set.on(msg.Topic) {
				sub.fail(errors.Wrap(entity.ErrMalformedEvent, err.Error()))
			}

			return
		}
		t.set.dispatch(msg.Topic, payload.Data)
	case "phx_reply":
		var reply phoenixReply
		if err := json.Unmarshal(msg.Payload, &reply); err == nil && reply.Status == "error" {
			for _, sub := range t.set.on(msg.Topic) {
				sub.fail(errors.WithMessage(ErrGatewayRejected, string(reply.Response)))
			}
		}
	case "phx_error", "phx_close", "system":
		t.logger.Debug("[WebsocketFeed] Channel event",
			slog.String("topic", msg.Topic),
			slog.String("event", msg.Event),
		)
	}
}

func (t *websocketTransport) drain() {
	for {
		select {
		case <-t.send:
		default:
			return
		}
	}
}

// Close disconnects and closes every subscription.
func (t *websocketTransport) Close() error {
	t.cancel()
	<-t.done

	for _, sub := range t.set.all() {
		_ = sub.Close()
	}

	return nil
}
