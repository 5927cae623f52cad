package service

import (
	"context"

	"creaglass/internal/domain/entity"
)

// SessionProvider exposes the authenticated session of the current request.
type SessionProvider interface {
	// CurrentSession returns nil when the request is anonymous.
	CurrentSession(ctx context.Context) *entity.Session
}
