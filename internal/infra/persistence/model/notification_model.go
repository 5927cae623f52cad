package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// A null TargetUserID marks a broadcast notification.
type NotificationModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type            string         `gorm:"type:text;not null;index"`
	PayloadJSON     datatypes.JSON `gorm:"column:payload_json;type:jsonb"`
	TargetUserID    *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedBySystem bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time

	Reads []NotificationReadModel `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationReadModel mirrors the 'notification_reads' table. (NotificationID, UserID) is unique.
type NotificationReadModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	ReadAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationReadModel) TableName() string {
	return "notification_reads"
}

// UserNotificationRow is the projection returned by the user listing query.
type UserNotificationRow struct {
	NotificationModel
	ReadAt *time.Time
}
