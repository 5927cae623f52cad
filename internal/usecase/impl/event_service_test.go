package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/cache"
	mockRepo "creaglass/internal/mocks/repository"
	mockSvc "creaglass/internal/mocks/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service   *eventService
	eventRepo *mockRepo.MockEventRepository
	publisher *mockSvc.MockChangePublisher
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	f := eventServiceFixtures{
		eventRepo: mockRepo.NewMockEventRepository(t),
		publisher: mockSvc.NewMockChangePublisher(t),
	}
	f.service = NewEventService(EventServiceParams{
		EventRepo: f.eventRepo,
		Publisher: f.publisher,
		Cache:     cache.NewMemoryCache(time.Minute),
		Logger:    newDiscardLogger(),
	}).(*eventService)

	return f
}

func TestEventService_CreateEvent_RefreshesCachedList(t *testing.T) {
	f := createTestEventService(t)
	ctx := context.Background()
	existing := &entity.Event{ID: uuid.New(), Title: "Inventory count"}
	userID := uuid.New()

	f.eventRepo.EXPECT().ListEvents(ctx).Return([]*entity.Event{existing}, nil).Once()
	f.eventRepo.EXPECT().CreateEvent(ctx, mock.MatchedBy(func(event *entity.Event) bool {
		return event.Title == "Furnace maintenance" && event.Description == "Line 2" && event.CreatedBy == userID
	})).RunAndReturn(func(_ context.Context, event *entity.Event) error {
		event.ID = uuid.New()
		return nil
	}).Once()
	f.publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionEvents, entity.ChangeInsert)).Return(nil).Once()

	first, err := f.service.ListEvents(ctx)
	require.NoError(t, err)
	cached, err := f.service.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Len(t, cached, 1)

	created, err := f.service.CreateEvent(ctx, &usecase.CreateEventInput{Title: "  Furnace maintenance ", Description: "Line 2", CreatedBy: userID})
	require.NoError(t, err)

	f.eventRepo.EXPECT().ListEvents(ctx).Return([]*entity.Event{created, existing}, nil).Once()
	refreshed, err := f.service.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateEventInput
	}{
		{name: "nil input", input: nil},
		{name: "blank title", input: &usecase.CreateEventInput{Title: "   "}},
		{name: "title too long", input: &usecase.CreateEventInput{Title: strings.Repeat("x", maxEventTitleLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestEventService(t)

			_, err := f.service.CreateEvent(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	f := createTestEventService(t)
	eventID := uuid.New()
	f.eventRepo.EXPECT().FindEventByID(mock.Anything, eventID).Return(nil, repository.ErrEventNotFound).Once()

	_, err := f.service.GetEvent(context.Background(), eventID)

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}
