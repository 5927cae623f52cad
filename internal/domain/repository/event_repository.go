package repository

import (
	"context"
	"errors"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when no event has the requested id.
var ErrEventNotFound = errors.New("event not found")

// EventRepository persists calendar events.
type EventRepository interface {
	// ListEvents returns every event, newest first.
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) error
}
