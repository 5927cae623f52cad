package usecase

import (
	"context"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Title       string
	Description string
	CreatedBy   uuid.UUID
}

// EventUsecase lists and creates calendar events.
type EventUsecase interface {
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
}
