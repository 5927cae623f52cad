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

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	publisher service.ChangePublisher
	cache     service.QueryCache
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Publisher service.ChangePublisher
	Cache     service.QueryCache
	Logger    *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (s *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListUsers returns the active users, newest first, through the query cache.
func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := readThrough(ctx, s.cache, s.log(ctx), usersKey(), s.userRepo.ListActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, userID)
	}

	return user, nil
}

// UpdateUser applies update under a row lock and publishes the before and after images.
func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, update *entity.UserUpdate) (*entity.User, error) {
	if err := validateUserUpdate(update); err != nil {
		return nil, err
	}

	var before, after entity.User
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewUserRepository()

		current, err := repo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		before = *current
		after = *current
		update.Apply(&after)

		return repo.Update(ctx, &after)
	})
	if err != nil {
		return nil, mapUserError(err, userID)
	}

	event := entity.NewChangeEvent(entity.CollectionUsers, entity.ChangeUpdate, before.Record(), after.Record())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	publishChange(ctx, s.log(ctx), s.publisher, event)
	invalidateKeys(ctx, s.log(ctx), s.cache, usersKey())

	s.log(ctx).Info("User updated",
		slog.String("user_id", userID.String()),
		slog.String("user_type", after.UserType.String()),
		slog.Bool("active", after.IsActive),
	)

	return &after, nil
}

// ActivateUser lets the user log in again.
func (s *userService) ActivateUser(ctx context.Context, userID uuid.UUID) error {
	return s.setActive(ctx, userID, true)
}

// DeactivateUser blocks further logins. Tokens already issued stay valid until they expire.
func (s *userService) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	return s.setActive(ctx, userID, false)
}

func (s *userService) setActive(ctx context.Context, userID uuid.UUID, active bool) error {
	_, err := s.UpdateUser(ctx, userID, &entity.UserUpdate{IsActive: &active})

	return err
}

func validateUserUpdate(update *entity.UserUpdate) error {
	switch {
	case update == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("update is required")
	case update.Username != nil && strings.TrimSpace(*update.Username) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("username must not be empty")
	case update.UserType != nil && !update.UserType.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("unknown user type")
	}
	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		update.Username = &trimmed
	}

	return nil
}

func mapUserError(err error, userID uuid.UUID) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, userID.String())
	}

	return errors.Wrap(err, "user operation failed")
}
