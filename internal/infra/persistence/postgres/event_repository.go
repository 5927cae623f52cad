package postgres

import (
	"context"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements repository.EventRepository.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	var eventModels []*model.EventModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := &model.EventModel{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		CreatedBy:   event.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
	}
}
