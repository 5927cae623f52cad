package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"creaglass/config"
	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	alertDialogTitle     = "New notification"
	alertVibration       = 400 * time.Millisecond
	defaultAlertItemName = "Item"
	defaultDialogDelay   = 500 * time.Millisecond

	// alertRedeliveryWindow bounds how long the feed may redeliver an insert. Dedup entries older than it are dropped.
	alertRedeliveryWindow = 10 * time.Minute
)

type alertKey struct {
	userID         uuid.UUID
	notificationID string
}

type alertDispatcher struct {
	surface     service.AlertSurface
	sounds      service.SoundLibrary
	logger      *slog.Logger
	dialogDelay time.Duration

	wg        sync.WaitGroup
	mu        sync.Mutex
	alerted   map[alertKey]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// AlertDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type AlertDispatcherParams struct {
	fx.In

	Surface service.AlertSurface
	Sounds  service.SoundLibrary
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAlertDispatcher is the constructor for alertDispatcher.
func NewAlertDispatcher(params AlertDispatcherParams) usecase.AlertDispatcher {
	delay := defaultDialogDelay
	if params.Config != nil && params.Config.Alert != nil && params.Config.Alert.DialogDelay > 0 {
		delay = params.Config.Alert.DialogDelay
	}

	return newAlertDispatcher(params.Surface, params.Sounds, delay, params.Logger)
}

func newAlertDispatcher(surface service.AlertSurface, sounds service.SoundLibrary, dialogDelay time.Duration, logger *slog.Logger) *alertDispatcher {
	return &alertDispatcher{
		surface:     surface,
		sounds:      sounds,
		logger:      logger,
		dialogDelay: dialogDelay,
		alerted:     make(map[alertKey]time.Time),
		now:         time.Now,
	}
}

func (d *alertDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// MaybeAlert alerts target for a notification insert addressed to it. Each notification alerts a user once.
func (d *alertDispatcher) MaybeAlert(ctx context.Context, event *entity.ChangeEvent, target entity.AlertTarget) bool {
	if event == nil || event.Kind != entity.ChangeInsert || event.Collection != entity.CollectionNotifications {
		return false
	}
	if !addressedTo(event.After, target.UserID) {
		return false
	}

	notificationID, ok := event.After.String("id")
	if !ok {
		notificationID = event.ID
	}
	if !d.markAlerted(alertKey{userID: target.UserID, notificationID: notificationID}) {
		d.log(ctx).Debug("[Alert] Notification already alerted",
			slog.String("notification_id", notificationID),
			slog.String("user_id", target.UserID.String()),
		)

		return false
	}

	message := d.composeMessage(ctx, event.After)

	d.wg.Add(1)
	go d.deliver(context.WithoutCancel(ctx), target, message)

	return true
}

func (d *alertDispatcher) markAlerted(key alertKey) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.lastSweep) >= alertRedeliveryWindow {
		d.sweepAlerted(now)
	}

	if at, seen := d.alerted[key]; seen && now.Sub(at) < alertRedeliveryWindow {
		return false
	}
	d.alerted[key] = now

	return true
}

// sweepAlerted drops entries past the redelivery window. Callers hold d.mu.
func (d *alertDispatcher) sweepAlerted(now time.Time) {
	for key, at := range d.alerted {
		if now.Sub(at) >= alertRedeliveryWindow {
			delete(d.alerted, key)
		}
	}
	d.lastSweep = now
}

// addressedTo reports whether a notification row is broadcast or targeted at userID.
func addressedTo(after entity.Record, userID uuid.UUID) bool {
	raw, ok := after.String("target_user_id")
	if !ok || raw == "" {
		return true
	}

	target, err := uuid.Parse(raw)
	if err != nil {
		return raw == userID.String()
	}

	return target == userID
}

// composeMessage builds the dialog text. Only low-stock notifications carry one.
func (d *alertDispatcher) composeMessage(ctx context.Context, after entity.Record) string {
	notificationType, _ := after.String("type")
	if notificationType != entity.NotificationTypeLowStock || !after.Has("payload_json") {
		return ""
	}

	payload, err := decodePayload(after["payload_json"])
	if err != nil {
		d.log(ctx).Warn("[Alert] Undecodable low stock payload", slog.Any("error", err))

		return ""
	}

	itemName, ok := payload.String("itemName")
	if !ok || itemName == "" {
		itemName = defaultAlertItemName
	}
	stock, ok := payload.Float("stock")
	if !ok {
		stock = 0
	}

	return "Low stock: " + itemName + " (" + strconv.FormatFloat(stock, 'f', -1, 64) + " units)"
}

// decodePayload accepts an object or a JSON encoded string holding one.
func decodePayload(raw any) (entity.Record, error) {
	switch v := raw.(type) {
	case map[string]any:
		return entity.Record(v), nil
	case entity.Record:
		return v, nil
	case string:
		var payload entity.Record
		if err := json.Unmarshal([]byte(v), &payload); err != nil {
			return nil, err
		}

		return payload, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var payload entity.Record
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}

		return payload, nil
	}
}

// deliver plays the sound, buzzes the device and shows the dialog. Failures are logged only.
func (d *alertDispatcher) deliver(ctx context.Context, target entity.AlertTarget, message string) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log(ctx).Error("[Alert] Alert delivery panicked", slog.Any("panic", r))
		}
	}()

	if err := d.playSound(ctx, target); err != nil {
		d.log(ctx).Warn("[Alert] Failed to play notification sound", slog.Any("error", err))
		d.vibrateFallback(ctx, target)
	} else {
		d.buzz(ctx, target)
	}

	if message == "" {
		return
	}

	timer := time.NewTimer(d.dialogDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	if err := d.surface.ShowDialog(ctx, target, alertDialogTitle, message); err != nil {
		d.log(ctx).Warn("[Alert] Failed to show dialog", slog.Any("error", err))
	}
}

// playSound plays the shared sound. An unavailable sound is not an error: the buzz replaces it.
func (d *alertDispatcher) playSound(ctx context.Context, target entity.AlertTarget) error {
	sound, err := d.sounds.Load(ctx)
	if err != nil {
		d.log(ctx).Debug("[Alert] Notification sound unavailable, using system feedback", slog.Any("error", err))

		return nil
	}

	return d.surface.PlaySound(ctx, target, sound)
}

func (d *alertDispatcher) buzz(ctx context.Context, target entity.AlertTarget) {
	var err error
	switch target.Platform {
	case entity.PlatformIOS:
		err = d.surface.HapticSuccess(ctx, target)
	case entity.PlatformAndroid:
		err = d.surface.Vibrate(ctx, target, alertVibration)
	default:
		return
	}
	if err != nil {
		d.log(ctx).Warn("[Alert] Failed to buzz device", slog.Any("error", err))
	}
}

func (d *alertDispatcher) vibrateFallback(ctx context.Context, target entity.AlertTarget) {
	if target.Platform != entity.PlatformAndroid {
		return
	}
	if err := d.surface.Vibrate(ctx, target, alertVibration); err != nil {
		d.log(ctx).Debug("[Alert] Vibration fallback failed", slog.Any("error", err))
	}
}

// Wait blocks until every dispatched alert finished.
func (d *alertDispatcher) Wait() {
	d.wg.Wait()
}

// Cleanup releases the shared sound handle.
func (d *alertDispatcher) Cleanup(ctx context.Context) error {
	return d.sounds.Release(ctx)
}
