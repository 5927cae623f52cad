package impl

import (
	"context"
	"testing"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	mockRepo "creaglass/internal/mocks/repository"
	mockSvc "creaglass/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   *userService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockChangePublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		publisher: mockSvc.NewMockChangePublisher(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Publisher: f.publisher,
		Cache:     newMissCache(t),
		Logger:    newDiscardLogger(),
	}).(*userService)

	return f
}

// expectTx runs the transaction body against a fresh repository mock prepared by setup.
func (f userServiceFixtures) expectTx(t *testing.T, setup func(repo *mockRepo.MockUserRepository)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(txRepo).Once()
			setup(txRepo)

			return fn(factory)
		}).
		Once()
}

func TestUserService_DeactivateUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.expectTx(t, func(repo *mockRepo.MockUserRepository) {
		repo.EXPECT().FindByIDForUpdate(ctx, userID).
			Return(&entity.User{ID: userID, Username: "operator", UserType: entity.UserTypeViewer, IsActive: true}, nil).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.ID == userID && !user.IsActive && user.Username == "operator"
		})).Return(nil).Once()
	})
	f.publisher.EXPECT().PublishChange(ctx, mock.MatchedBy(func(event *entity.ChangeEvent) bool {
		return event.Collection == entity.CollectionUsers &&
			event.Kind == entity.ChangeUpdate &&
			event.Before["is_active"] == true &&
			event.After["is_active"] == false
	})).Return(nil).Once()

	require.NoError(t, f.service.DeactivateUser(ctx, userID))
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	username := "cutter"

	f.expectTx(t, func(repo *mockRepo.MockUserRepository) {
		repo.EXPECT().FindByIDForUpdate(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()
	})

	_, err := f.service.UpdateUser(ctx, userID, &entity.UserUpdate{Username: &username})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_Validation(t *testing.T) {
	blank := "  "
	unknown := entity.UserType("Admin")

	tests := []struct {
		name   string
		update *entity.UserUpdate
	}{
		{name: "nil update", update: nil},
		{name: "blank username", update: &entity.UserUpdate{Username: &blank}},
		{name: "unknown type", update: &entity.UserUpdate{UserType: &unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)

			_, err := f.service.UpdateUser(context.Background(), uuid.New(), tt.update)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	f.userRepo.EXPECT().ListActive(ctx).Return([]*entity.User{{ID: uuid.New(), Username: "operator", IsActive: true}}, nil).Once()

	users, err := f.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "operator", users[0].Username)
}
