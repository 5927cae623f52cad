package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel mirrors the 'documents' table. StorageKey locates the content in blob storage.
type DocumentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Filename   string    `gorm:"type:text;not null"`
	MimeType   string    `gorm:"type:varchar(255);not null"`
	StorageKey string    `gorm:"type:text;unique;not null"`
	Size       int64     `gorm:"not null;default:0"`
	Checksum   string    `gorm:"type:char(64)"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}
