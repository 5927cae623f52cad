package auth

import (
	"context"
	"testing"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionProvider_CurrentSession(t *testing.T) {
	provider := NewSessionProvider()

	assert.Nil(t, provider.CurrentSession(context.Background()))

	session := &entity.Session{ID: uuid.New(), UserID: uuid.New()}
	ctx := deliverycontext.WithSession(context.Background(), session)

	assert.Same(t, session, provider.CurrentSession(ctx))
}
