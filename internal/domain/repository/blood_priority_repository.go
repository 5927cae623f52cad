package repository

import (
	"context"
	"errors"
	"time"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for blood priority persistence.
var (
	// ErrBloodPriorityMessageNotFound is returned when a message does not exist.
	ErrBloodPriorityMessageNotFound = errors.New("blood priority message not found")
	// ErrBloodPriorityReadNotFound is returned when no read record exists for (message, user).
	ErrBloodPriorityReadNotFound = errors.New("blood priority read not found")
)

// BloodPriorityRepository persists messages and their per-user acknowledgments.
type BloodPriorityRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, message *entity.BloodPriorityMessage) error

	// FindMessageByID retrieves a message.
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.BloodPriorityMessage, error)

	// ListMessages returns all messages, newest first.
	ListMessages(ctx context.Context) ([]*entity.BloodPriorityMessage, error)

	// FindRead retrieves the read record of (messageID, userID).
	FindRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error)

	// FindUserReads returns every read record of userID.
	FindUserReads(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityRead, error)

	// CreateRead inserts a read record. The (message, user) pair is unique.
	CreateRead(ctx context.Context, read *entity.BloodPriorityRead) error

	// SetOpenedAt sets opened_at only where it is still null.
	SetOpenedAt(ctx context.Context, messageID, userID uuid.UUID, openedAt time.Time) error

	// SetConfirmedAt sets confirmed_at only where it is still null.
	SetConfirmedAt(ctx context.Context, messageID, userID uuid.UUID, confirmedAt time.Time) (bool, error)
}
