package notification

import (
	"context"
	"log/slog"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the part of *messaging.Client the surface uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// fcmSurface delivers alerts as FCM data messages. Dialogs also carry a visible notification.
type fcmSurface struct {
	client messagingClient
	logger *slog.Logger
}

// NewFCMSurface creates a new Firebase alert surface
func NewFCMSurface(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.AlertSurface, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMSurface(client, logger), nil
}

func newFCMSurface(client messagingClient, logger *slog.Logger) *fcmSurface {
	return &fcmSurface{
		client: client,
		logger: logger,
	}
}

func (s *fcmSurface) PlaySound(ctx context.Context, target entity.AlertTarget, sound *service.SoundHandle) error {
	cmd := newCommand(ActionPlaySound, target)
	cmd.Sound = sound.Key
	cmd.Checksum = sound.Checksum

	return s.send(ctx, target, cmd, nil)
}

func (s *fcmSurface) Vibrate(ctx context.Context, target entity.AlertTarget, duration time.Duration) error {
	cmd := newCommand(ActionVibrate, target)
	cmd.DurationMs = duration.Milliseconds()

	return s.send(ctx, target, cmd, nil)
}

func (s *fcmSurface) HapticSuccess(ctx context.Context, target entity.AlertTarget) error {
	cmd := newCommand(ActionHaptic, target)
	cmd.Style = "success"

	return s.send(ctx, target, cmd, nil)
}

func (s *fcmSurface) ShowDialog(ctx context.Context, target entity.AlertTarget, title, message string) error {
	cmd := newCommand(ActionDialog, target)
	cmd.Title = title
	cmd.Message = message

	return s.send(ctx, target, cmd, &messaging.Notification{
		Title: title,
		Body:  message,
	})
}

func (s *fcmSurface) send(ctx context.Context, target entity.AlertTarget, cmd *Command, visible *messaging.Notification) error {
	if target.DeviceToken == "" {
		return ErrNoDeviceToken
	}

	message := &messaging.Message{
		Token:        target.DeviceToken,
		Data:         cmd.Data(),
		Notification: visible,
	}
	switch target.Platform {
	case entity.PlatformAndroid:
		message.Android = &messaging.AndroidConfig{Priority: "high"}
	case entity.PlatformIOS:
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{Aps: &messaging.Aps{ContentAvailable: visible == nil}},
		}
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(ErrNoDeviceToken, err.Error())
		}

		return errors.Wrap(err, "failed to send alert")
	}

	s.logger.Debug("[FCM] Alert sent",
		slog.String("action", cmd.Action),
		slog.String("session_id", cmd.SessionID),
		slog.String("message_id", messageID),
	)

	return nil
}

func (s *fcmSurface) Close() error {
	return nil
}
