package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func androidTarget() entity.AlertTarget {
	return entity.AlertTarget{
		UserID:      uuid.New(),
		SessionID:   uuid.New(),
		DeviceToken: "device-token",
		Platform:    entity.PlatformAndroid,
	}
}

func TestFCMSurface_VibrateSendsDataMessage(t *testing.T) {
	client := &fakeMessagingClient{}
	surface := newFCMSurface(client, discardLogger())
	target := androidTarget()

	require.NoError(t, surface.Vibrate(context.Background(), target, 400*time.Millisecond))

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "device-token", msg.Token)
	assert.Nil(t, msg.Notification)
	assert.Equal(t, ActionVibrate, msg.Data["action"])
	assert.Equal(t, "400", msg.Data["durationMs"])
	assert.Equal(t, target.SessionID.String(), msg.Data["sessionId"])
	require.NotNil(t, msg.Android)
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestFCMSurface_DialogCarriesVisibleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	surface := newFCMSurface(client, discardLogger())
	target := androidTarget()
	target.Platform = entity.PlatformIOS

	require.NoError(t, surface.ShowDialog(context.Background(), target, "New notification", "Low stock: Float 4mm (2 units)"))

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	require.NotNil(t, msg.Notification)
	assert.Equal(t, "New notification", msg.Notification.Title)
	assert.Equal(t, "Low stock: Float 4mm (2 units)", msg.Notification.Body)
	require.NotNil(t, msg.APNS)
	assert.False(t, msg.APNS.Payload.Aps.ContentAvailable)
}

func TestFCMSurface_PlaySoundCarriesChecksum(t *testing.T) {
	client := &fakeMessagingClient{}
	surface := newFCMSurface(client, discardLogger())

	err := surface.PlaySound(context.Background(), androidTarget(), &service.SoundHandle{Key: "notification.mp3", Checksum: "abc"})

	require.NoError(t, err)
	assert.Equal(t, "notification.mp3", client.sent[0].Data["sound"])
	assert.Equal(t, "abc", client.sent[0].Data["checksum"])
}

func TestFCMSurface_MissingDeviceToken(t *testing.T) {
	client := &fakeMessagingClient{}
	surface := newFCMSurface(client, discardLogger())
	target := androidTarget()
	target.DeviceToken = ""

	err := surface.HapticSuccess(context.Background(), target)

	assert.ErrorIs(t, err, ErrNoDeviceToken)
	assert.Empty(t, client.sent)
}
