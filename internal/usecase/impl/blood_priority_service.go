package impl

import (
	"context"
	"log/slog"
	"time"

	"creaglass/config"
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

type bloodPriorityService struct {
	repo            repository.BloodPriorityRepository
	publisher       service.ChangePublisher
	cache           service.QueryCache
	logger          *slog.Logger
	minTimerSeconds int
	enforceDwell    bool
	now             func() time.Time
}

// BloodPriorityServiceParams holds dependencies for bloodPriorityService, injected by Fx.
type BloodPriorityServiceParams struct {
	fx.In

	Repo      repository.BloodPriorityRepository
	Publisher service.ChangePublisher
	Cache     service.QueryCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBloodPriorityService creates a new blood priority service instance
func NewBloodPriorityService(params BloodPriorityServiceParams) usecase.BloodPriorityUsecase {
	svc := &bloodPriorityService{
		repo:            params.Repo,
		publisher:       params.Publisher,
		cache:           params.Cache,
		logger:          params.Logger,
		minTimerSeconds: entity.DefaultMinTimerSeconds,
		now:             time.Now,
	}
	if cfg := params.Config; cfg != nil && cfg.BloodPriority != nil {
		if cfg.BloodPriority.MinTimerSeconds > 0 {
			svc.minTimerSeconds = cfg.BloodPriority.MinTimerSeconds
		}
		svc.enforceDwell = cfg.BloodPriority.EnforceDwell
	}

	return svc
}

func (s *bloodPriorityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *bloodPriorityService) CreateMessage(ctx context.Context, input *usecase.CreateBloodPriorityMessageInput) (*entity.BloodPriorityMessage, error) {
	if input == nil || input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message title is required")
	}

	message := &entity.BloodPriorityMessage{
		Title:     input.Title,
		Body:      input.Body,
		CreatedBy: input.CreatedBy,
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create blood priority message")
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionBloodPriorityMessages, entity.ChangeInsert, nil, message.Record()))
	// Every user's unread list gains the message.
	invalidateKeys(ctx, s.log(ctx), s.cache, entity.NewCacheKey(keyBloodPriority))

	s.log(ctx).Info("Blood priority message created", slog.String("message_id", message.ID.String()))

	return message, nil
}

func (s *bloodPriorityService) ListMessages(ctx context.Context) ([]*entity.BloodPriorityMessage, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood priority messages")
	}

	return messages, nil
}

func (s *bloodPriorityService) GetMessage(ctx context.Context, messageID uuid.UUID) (*entity.BloodPriorityMessage, error) {
	message, err := s.repo.FindMessageByID(ctx, messageID)
	if errors.Is(err, repository.ErrBloodPriorityMessageNotFound) {
		return nil, errors.Wrap(domainerrors.ErrMessageNotFound, messageID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blood priority message")
	}

	return message, nil
}

// OpenMessage creates the read with the opened time, or sets it when the record predates the open.
func (s *bloodPriorityService) OpenMessage(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error) {
	if _, err := s.GetMessage(ctx, messageID); err != nil {
		return nil, err
	}

	existing, err := s.findRead(ctx, messageID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.OpenedAt != nil {
		return existing, nil
	}

	now := s.now().UTC()
	kind := entity.ChangeUpdate
	if existing == nil {
		kind = entity.ChangeInsert
		read := &entity.BloodPriorityRead{
			MessageID:       messageID,
			UserID:          userID,
			OpenedAt:        &now,
			MinTimerSeconds: s.minTimerSeconds,
		}
		if err := s.repo.CreateRead(ctx, read); err != nil {
			if errors.Is(err, repository.ErrBloodPriorityMessageNotFound) {
				return nil, errors.Wrap(domainerrors.ErrMessageNotFound, messageID.String())
			}

			return nil, errors.Wrap(err, "failed to create blood priority read")
		}
	} else if err := s.repo.SetOpenedAt(ctx, messageID, userID, now); err != nil {
		return nil, errors.Wrap(err, "failed to open blood priority message")
	}

	// A concurrent open may have won the insert; the stored record is authoritative.
	opened, err := s.repo.FindRead(ctx, messageID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload blood priority read")
	}

	var before entity.Record
	if existing != nil {
		before = existing.Record()
	}
	s.publish(ctx, entity.NewChangeEvent(entity.CollectionBloodPriorityReads, kind, before, opened.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, unreadBloodPriorityKey(userID))

	s.log(ctx).Info("Blood priority message opened",
		slog.String("message_id", messageID.String()),
		slog.String("user_id", userID.String()),
	)

	return opened, nil
}

// ConfirmRead sets the confirmation time. The dwell is only checked here when enforceDwell is set.
func (s *bloodPriorityService) ConfirmRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error) {
	read, err := s.findRead(ctx, messageID, userID)
	if err != nil {
		return nil, err
	}
	if read == nil || read.OpenedAt == nil {
		return nil, errors.Wrap(domainerrors.ErrReadNotOpened, messageID.String())
	}
	if read.ConfirmedAt != nil {
		return read, nil
	}

	now := s.now().UTC()
	if s.enforceDwell {
		if remaining := read.DwellRemaining(now); remaining > 0 {
			return nil, domainerrors.ErrDwellNotElapsed.WrapMessage("retry in " + remaining.Round(time.Second).String())
		}
	}

	changed, err := s.repo.SetConfirmedAt(ctx, messageID, userID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm blood priority read")
	}

	confirmed, err := s.repo.FindRead(ctx, messageID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload blood priority read")
	}
	if !changed {
		return confirmed, nil
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionBloodPriorityReads, entity.ChangeUpdate, read.Record(), confirmed.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, unreadBloodPriorityKey(userID))

	s.log(ctx).Info("Blood priority read confirmed",
		slog.String("message_id", messageID.String()),
		slog.String("user_id", userID.String()),
		slog.Duration("dwell", now.Sub(*read.OpenedAt)),
	)

	return confirmed, nil
}

func (s *bloodPriorityService) GetRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error) {
	return s.findRead(ctx, messageID, userID)
}

func (s *bloodPriorityService) GetUserReads(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityRead, error) {
	reads, err := s.repo.FindUserReads(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood priority reads")
	}

	return reads, nil
}

func (s *bloodPriorityService) GetUnreadMessages(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityMessage, error) {
	unread, err := readThrough(ctx, s.cache, s.log(ctx), unreadBloodPriorityKey(userID),
		func(ctx context.Context) ([]*entity.BloodPriorityMessage, error) {
			return s.loadUnread(ctx, userID)
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread blood priority messages")
	}

	return unread, nil
}

func (s *bloodPriorityService) loadUnread(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityMessage, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	reads, err := s.repo.FindUserReads(ctx, userID)
	if err != nil {
		return nil, err
	}

	confirmed := make(map[uuid.UUID]struct{}, len(reads))
	for _, read := range reads {
		if read.ConfirmedAt != nil {
			confirmed[read.MessageID] = struct{}{}
		}
	}

	unread := make([]*entity.BloodPriorityMessage, 0, len(messages))
	for _, message := range messages {
		if _, ok := confirmed[message.ID]; !ok {
			unread = append(unread, message)
		}
	}

	return unread, nil
}

// findRead returns nil without error when no record exists.
func (s *bloodPriorityService) findRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error) {
	read, err := s.repo.FindRead(ctx, messageID, userID)
	if errors.Is(err, repository.ErrBloodPriorityReadNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blood priority read")
	}

	return read, nil
}

func (s *bloodPriorityService) publish(ctx context.Context, event *entity.ChangeEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	publishChange(ctx, s.log(ctx), s.publisher, event)
}
