package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxEventTitleLength = 200

type eventService struct {
	eventRepo repository.EventRepository
	publisher service.ChangePublisher
	cache     service.QueryCache
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Publisher service.ChangePublisher
	Cache     service.QueryCache
	Logger    *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		publisher: params.Publisher,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (s *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListEvents returns every event, newest first, through the query cache.
func (s *eventService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := readThrough(ctx, s.cache, s.log(ctx), eventsKey(), s.eventRepo.ListEvents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, errors.Wrap(domainerrors.ErrEventNotFound, eventID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event title is required")
	}
	title := strings.TrimSpace(input.Title)
	if len(title) > maxEventTitleLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event title is too long")
	}

	event := &entity.Event{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   input.CreatedBy,
	}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	change := entity.NewChangeEvent(entity.CollectionEvents, entity.ChangeInsert, nil, event.Record())
	change.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	publishChange(ctx, s.log(ctx), s.publisher, change)
	invalidateKeys(ctx, s.log(ctx), s.cache, eventsKey())

	s.log(ctx).Info("Event created", slog.String("event_id", event.ID.String()))

	return event, nil
}
