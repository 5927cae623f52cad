// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification and fills its generated fields.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindUserNotifications returns broadcast and targeted notifications for userID, newest first,
	// with ReadAt filled from the user's receipts.
	FindUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnread counts notifications addressed to userID without a receipt.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreateRead inserts a receipt unless one exists. It reports whether a row was inserted.
	CreateRead(ctx context.Context, read *entity.NotificationRead) (bool, error)

	// DeleteTargetedNotifications removes notifications targeted at userID along with their receipts.
	// Receipts of broadcast notifications are kept.
	DeleteTargetedNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
}
