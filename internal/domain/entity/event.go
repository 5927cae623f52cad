package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry shared with every user.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Record converts e to the row image carried by change events.
func (e *Event) Record() Record {
	return Record{
		"id":          e.ID.String(),
		"title":       e.Title,
		"description": e.Description,
		"created_by":  e.CreatedBy.String(),
		"created_at":  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
