package usecase

import (
	"context"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase manages operator accounts.
type UserUsecase interface {
	// ListUsers returns the active users, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update *entity.UserUpdate) (*entity.User, error)
	ActivateUser(ctx context.Context, userID uuid.UUID) error
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}
