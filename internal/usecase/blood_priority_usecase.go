package usecase

import (
	"context"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBloodPriorityMessageInput defines the data required to create a message.
type CreateBloodPriorityMessageInput struct {
	Title     string
	Body      string
	CreatedBy uuid.UUID
}

// BloodPriorityUsecase drives the open, dwell, confirm acknowledgment workflow.
type BloodPriorityUsecase interface {
	CreateMessage(ctx context.Context, input *CreateBloodPriorityMessageInput) (*entity.BloodPriorityMessage, error)
	ListMessages(ctx context.Context) ([]*entity.BloodPriorityMessage, error)
	GetMessage(ctx context.Context, messageID uuid.UUID) (*entity.BloodPriorityMessage, error)

	// OpenMessage starts the dwell countdown. Re-opening keeps the first opened time.
	OpenMessage(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error)

	// ConfirmRead sets the confirmation time. Confirmed reads are returned unchanged.
	ConfirmRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error)

	// GetRead returns the read record, or nil when the user never opened the message.
	GetRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error)

	GetUserReads(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityRead, error)

	// GetUnreadMessages returns every message without a confirmed read of userID, newest first.
	GetUnreadMessages(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityMessage, error)
}
