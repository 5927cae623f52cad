package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/pkg/errors"
)

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// changeAttributes are attached to every published message for filtering and tracing.
func changeAttributes(event *entity.ChangeEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"collection": string(event.Collection),
		"kind":       string(event.Kind),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// encodeChange serializes the event in the backend envelope format.
func encodeChange(event *entity.ChangeEvent) ([]byte, error) {
	data, err := json.Marshal(event.ToWire())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// NewPushMessage wraps event into a push envelope.
func NewPushMessage(event *entity.ChangeEvent, subscription string) (*PubSubPushMessage, error) {
	data, err := encodeChange(event)
	if err != nil {
		return nil, err
	}

	pushMsg := &PubSubPushMessage{Subscription: subscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = event.ID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = changeAttributes(event)

	return pushMsg, nil
}
