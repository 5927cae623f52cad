package usecase

import (
	"context"
	"encoding/json"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput defines the data required to create a notification.
type CreateNotificationInput struct {
	Type            string
	Payload         json.RawMessage
	TargetUserID    *uuid.UUID
	CreatedBySystem bool
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// CreateNotification persists a notification, publishes its insert and alerts active sessions
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// ListUserNotifications returns broadcast and targeted notifications with the viewer's read state
	ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAsRead records the viewer's receipt. Repeated calls keep the first read time.
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error

	// ClearUserNotifications removes the user's receipts and the notifications targeted at them
	ClearUserNotifications(ctx context.Context, userID uuid.UUID) error
}
