package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodPriorityMessageModel mirrors the 'blood_priority_messages' table.
type BloodPriorityMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodPriorityMessageModel) TableName() string {
	return "blood_priority_messages"
}

// BloodPriorityReadModel mirrors the 'blood_priority_reads' table.
type BloodPriorityReadModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_blood_priority_reads_message_user"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_blood_priority_reads_message_user;index"`
	OpenedAt        *time.Time `gorm:"column:opened_at"`
	ConfirmedAt     *time.Time `gorm:"column:confirmed_at"`
	MinTimerSeconds int        `gorm:"not null;default:10"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodPriorityReadModel) TableName() string {
	return "blood_priority_reads"
}
