// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultNotificationListLimit = 50

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM, nil), nil
}

// FindUserNotifications lists broadcast and targeted notifications of userID with their read time.
func (repo *notificationRepository) FindUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationListLimit
	}

	var rows []*model.UserNotificationRow
	if err := repo.db.WithContext(ctx).
		Table("notifications AS n").
		Select("n.*, r.read_at").
		Joins("LEFT JOIN notification_reads r ON r.notification_id = n.id AND r.user_id = ?", userID).
		Where("n.target_user_id IS NULL OR n.target_user_id = ?", userID).
		Order("n.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user notifications")
	}

	notifications := make([]*entity.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, toNotificationDomain(&row.NotificationModel, row.ReadAt))
	}

	return notifications, nil
}

// CountUnread counts notifications addressed to userID that have no receipt.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Table("notifications AS n").
		Joins("LEFT JOIN notification_reads r ON r.notification_id = n.id AND r.user_id = ?", userID).
		Where("(n.target_user_id IS NULL OR n.target_user_id = ?) AND r.notification_id IS NULL", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// CreateRead inserts the receipt, leaving an existing one untouched.
func (repo *notificationRepository) CreateRead(ctx context.Context, read *entity.NotificationRead) (bool, error) {
	readM := &model.NotificationReadModel{
		NotificationID: read.NotificationID,
		UserID:         read.UserID,
		ReadAt:         read.ReadAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(readM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrNotificationNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create notification read")
	}

	return result.RowsAffected > 0, nil
}

// DeleteTargetedNotifications removes the notifications targeted at userID and returns them.
// Their receipts go with them through the cascading foreign key.
func (repo *notificationRepository) DeleteTargetedNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var deleted []*model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("target_user_id = ?", userID).
		Delete(&deleted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete targeted notifications")
	}

	notifications := make([]*entity.Notification, 0, len(deleted))
	for _, notificationM := range deleted {
		notifications = append(notifications, toNotificationDomain(notificationM, nil))
	}

	return notifications, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel, readAt *time.Time) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:              data.ID,
		Type:            data.Type,
		PayloadJSON:     []byte(data.PayloadJSON),
		TargetUserID:    data.TargetUserID,
		CreatedBySystem: data.CreatedBySystem,
		CreatedAt:       data.CreatedAt,
		ReadAt:          readAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:              data.ID,
		Type:            data.Type,
		PayloadJSON:     datatypes.JSON(data.PayloadJSON),
		TargetUserID:    data.TargetUserID,
		CreatedBySystem: data.CreatedBySystem,
		CreatedAt:       data.CreatedAt,
	}
}
