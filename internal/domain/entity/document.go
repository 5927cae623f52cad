package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file. The content lives in blob storage under StorageKey.
type Document struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	StorageKey string    `json:"storage_key"`
	Size       int64     `json:"size"`
	Checksum   string    `json:"checksum"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record converts d to the row image carried by change events.
func (d *Document) Record() Record {
	return Record{
		"id":          d.ID.String(),
		"filename":    d.Filename,
		"mime_type":   d.MimeType,
		"storage_key": d.StorageKey,
		"size":        d.Size,
		"created_by":  d.CreatedBy.String(),
		"created_at":  d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
