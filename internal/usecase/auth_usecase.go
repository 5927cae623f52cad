package usecase

import (
	"context"
	"time"

	"creaglass/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Session     *entity.Session
	User        *entity.User
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout ends the realtime session bound to session.
	Logout(ctx context.Context, session *entity.Session) error

	// Authenticate validates an access token and rebuilds the session it carries.
	Authenticate(ctx context.Context, accessToken string) (*entity.Session, error)
}
