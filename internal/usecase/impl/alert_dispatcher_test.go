package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	mockSvc "creaglass/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertDispatcherFixtures struct {
	dispatcher *alertDispatcher
	surface    *mockSvc.MockAlertSurface
	sounds     *mockSvc.MockSoundLibrary
}

func createTestAlertDispatcher(t *testing.T) alertDispatcherFixtures {
	surface := mockSvc.NewMockAlertSurface(t)
	sounds := mockSvc.NewMockSoundLibrary(t)

	return alertDispatcherFixtures{
		dispatcher: newAlertDispatcher(surface, sounds, 0, newDiscardLogger()),
		surface:    surface,
		sounds:     sounds,
	}
}

func notificationInsert(target *uuid.UUID, notificationType string, payload any) *entity.ChangeEvent {
	after := entity.Record{
		"id":             uuid.NewString(),
		"type":           notificationType,
		"target_user_id": nil,
	}
	if target != nil {
		after["target_user_id"] = target.String()
	}
	if payload != nil {
		after["payload_json"] = payload
	}

	return entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeInsert, nil, after)
}

func webTarget(userID uuid.UUID) entity.AlertTarget {
	return entity.AlertTarget{UserID: userID, SessionID: uuid.New(), Platform: entity.PlatformWeb}
}

func TestAlertDispatcher_MaybeAlert_Addressing(t *testing.T) {
	currentUser := uuid.New()
	otherUser := uuid.New()

	tests := []struct {
		name     string
		target   *uuid.UUID
		expected bool
	}{
		{name: "broadcast", target: nil, expected: true},
		{name: "targeted at current user", target: &currentUser, expected: true},
		{name: "targeted at another user", target: &otherUser, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAlertDispatcher(t)
			f.sounds.EXPECT().Load(mock.Anything).Return(nil, errors.New("no sound")).Maybe()

			alerted := f.dispatcher.MaybeAlert(context.Background(), notificationInsert(tt.target, "info", nil), webTarget(currentUser))
			f.dispatcher.Wait()

			assert.Equal(t, tt.expected, alerted)
		})
	}
}

func TestAlertDispatcher_MaybeAlert_IgnoresOtherEvents(t *testing.T) {
	f := createTestAlertDispatcher(t)
	target := webTarget(uuid.New())

	update := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeUpdate, entity.Record{}, entity.Record{"id": "n1"})
	inventory := entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeInsert, nil, entity.Record{"id": "i1"})

	assert.False(t, f.dispatcher.MaybeAlert(context.Background(), update, target))
	assert.False(t, f.dispatcher.MaybeAlert(context.Background(), inventory, target))
	assert.False(t, f.dispatcher.MaybeAlert(context.Background(), nil, target))
}

func TestAlertDispatcher_MaybeAlert_AlertsEachUserOnce(t *testing.T) {
	f := createTestAlertDispatcher(t)
	f.sounds.EXPECT().Load(mock.Anything).Return(nil, errors.New("no sound")).Times(2)

	ctx := context.Background()
	event := notificationInsert(nil, "info", nil)
	first := webTarget(uuid.New())
	second := webTarget(uuid.New())

	assert.True(t, f.dispatcher.MaybeAlert(ctx, event, first))
	assert.False(t, f.dispatcher.MaybeAlert(ctx, event, first))
	assert.True(t, f.dispatcher.MaybeAlert(ctx, event, second))

	f.dispatcher.Wait()
}

func TestAlertDispatcher_MaybeAlert_ForgetsAlertsPastRedeliveryWindow(t *testing.T) {
	f := createTestAlertDispatcher(t)
	f.sounds.EXPECT().Load(mock.Anything).Return(nil, errors.New("no sound")).Times(3)

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	f.dispatcher.now = func() time.Time { return now }

	ctx := context.Background()
	target := webTarget(uuid.New())
	old := notificationInsert(nil, "info", nil)

	require.True(t, f.dispatcher.MaybeAlert(ctx, old, target))

	now = now.Add(alertRedeliveryWindow / 2)
	assert.False(t, f.dispatcher.MaybeAlert(ctx, old, target))

	now = now.Add(alertRedeliveryWindow)
	require.True(t, f.dispatcher.MaybeAlert(ctx, notificationInsert(nil, "info", nil), target))

	f.dispatcher.mu.Lock()
	assert.Len(t, f.dispatcher.alerted, 1)
	f.dispatcher.mu.Unlock()

	assert.True(t, f.dispatcher.MaybeAlert(ctx, old, target))
	f.dispatcher.Wait()
}

func TestAlertDispatcher_LowStockDialog(t *testing.T) {
	f := createTestAlertDispatcher(t)
	target := entity.AlertTarget{UserID: uuid.New(), Platform: entity.PlatformIOS}
	sound := &service.SoundHandle{Key: "notification.mp3"}

	f.sounds.EXPECT().Load(mock.Anything).Return(sound, nil).Once()
	f.surface.EXPECT().PlaySound(mock.Anything, target, sound).Return(nil).Once()
	f.surface.EXPECT().HapticSuccess(mock.Anything, target).Return(nil).Once()
	f.surface.EXPECT().
		ShowDialog(mock.Anything, target, "New notification", "Low stock: Float 4mm (2 units)").
		Return(nil).
		Once()

	event := notificationInsert(nil, entity.NotificationTypeLowStock, `{"itemName":"Float 4mm","itemId":"x","stock":2,"threshold":5}`)

	require.True(t, f.dispatcher.MaybeAlert(context.Background(), event, target))
	f.dispatcher.Wait()
}

func TestAlertDispatcher_SoundFailureFallsBackToVibration(t *testing.T) {
	f := createTestAlertDispatcher(t)
	target := entity.AlertTarget{UserID: uuid.New(), Platform: entity.PlatformAndroid, DeviceToken: "token"}
	sound := &service.SoundHandle{Key: "notification.mp3"}

	f.sounds.EXPECT().Load(mock.Anything).Return(sound, nil).Once()
	f.surface.EXPECT().PlaySound(mock.Anything, target, sound).Return(errors.New("player busy")).Once()
	f.surface.EXPECT().Vibrate(mock.Anything, target, alertVibration).Return(nil).Once()

	require.True(t, f.dispatcher.MaybeAlert(context.Background(), notificationInsert(nil, "info", nil), target))
	f.dispatcher.Wait()
}

func TestAlertDispatcher_ComposeMessage(t *testing.T) {
	f := createTestAlertDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		after    entity.Record
		expected string
	}{
		{
			name:     "object payload",
			after:    entity.Record{"type": entity.NotificationTypeLowStock, "payload_json": map[string]any{"itemName": "Clear 6mm", "stock": 3.5}},
			expected: "Low stock: Clear 6mm (3.5 units)",
		},
		{
			name:     "missing item name",
			after:    entity.Record{"type": entity.NotificationTypeLowStock, "payload_json": map[string]any{"stock": 0}},
			expected: "Low stock: Item (0 units)",
		},
		{
			name:     "undecodable payload",
			after:    entity.Record{"type": entity.NotificationTypeLowStock, "payload_json": "{not json"},
			expected: "",
		},
		{
			name:     "other type",
			after:    entity.Record{"type": "info", "payload_json": map[string]any{"itemName": "x"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.dispatcher.composeMessage(ctx, tt.after))
		})
	}
}

func TestAlertDispatcher_Cleanup(t *testing.T) {
	f := createTestAlertDispatcher(t)
	f.sounds.EXPECT().Release(mock.Anything).Return(nil).Once()

	require.NoError(t, f.dispatcher.Cleanup(context.Background()))
}
