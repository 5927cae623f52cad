// Package notification delivers local alerts to the device behind a realtime session.
package notification

import (
	"encoding/json"
	"strconv"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/errors"
)

// Alert actions understood by the client app.
const (
	ActionPlaySound = "playSound"
	ActionVibrate   = "vibrate"
	ActionHaptic    = "haptic"
	ActionDialog    = "dialog"
)

// ErrNoDeviceToken is returned when the session registered no push token.
var ErrNoDeviceToken = errors.New("session has no device token")

// Command is the device-side instruction carried by every surface.
type Command struct {
	Action     string `json:"action"`
	SessionID  string `json:"sessionId"`
	Sound      string `json:"sound,omitempty"`
	Checksum   string `json:"checksum,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Style      string `json:"style,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	SentAt     string `json:"sentAt"`
}

func newCommand(action string, target entity.AlertTarget) *Command {
	return &Command{
		Action:    action,
		SessionID: target.SessionID.String(),
		SentAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Data flattens the command into FCM data fields.
func (c *Command) Data() map[string]string {
	data := map[string]string{
		"action":    c.Action,
		"sessionId": c.SessionID,
		"sentAt":    c.SentAt,
	}
	if c.Sound != "" {
		data["sound"] = c.Sound
		data["checksum"] = c.Checksum
	}
	if c.DurationMs > 0 {
		data["durationMs"] = strconv.FormatInt(c.DurationMs, 10)
	}
	if c.Style != "" {
		data["style"] = c.Style
	}
	if c.Title != "" {
		data["title"] = c.Title
		data["message"] = c.Message
	}

	return data
}

// Payload encodes the command for MQTT.
func (c *Command) Payload() ([]byte, error) {
	data, err := json.Marshal(c)

	return data, errors.WithStack(err)
}
