package auth

import (
	"context"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
)

// contextSessionProvider reads the session the auth middleware attached to the request context.
type contextSessionProvider struct{}

// NewSessionProvider is the constructor for the context-backed SessionProvider.
func NewSessionProvider() service.SessionProvider {
	return contextSessionProvider{}
}

func (contextSessionProvider) CurrentSession(ctx context.Context) *entity.Session {
	return deliverycontext.GetSession(ctx)
}
