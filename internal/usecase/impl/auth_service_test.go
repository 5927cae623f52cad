package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/domain/service"
	mockRepo "creaglass/internal/mocks/repository"
	mockSvc "creaglass/internal/mocks/service"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	realtime     *mockUc.MockRealtimeUsecase
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		realtime:     mockUc.NewMockRealtimeUsecase(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Realtime:     f.realtime,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "ana", UserType: entity.UserTypeMaster, PasswordHash: "hash", IsActive: true}
	expiresAt := time.Now().Add(12 * time.Hour)

	f.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(user, nil).Once()
	f.hasher.EXPECT().Check("secret-pass", "hash").Return(true).Once()
	f.tokenService.EXPECT().
		GenerateAccessToken(user.ID, mock.AnythingOfType("uuid.UUID"), []string{"Master"}).
		Return("access-token", expiresAt, nil).
		Once()

	output, err := f.service.Login(ctx, &usecase.LoginInput{Username: " ana ", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, user.ID, output.Session.UserID)
	assert.NotEqual(t, uuid.Nil, output.Session.ID)
	assert.Equal(t, expiresAt, output.Session.ExpiresAt)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	inactive := &entity.User{ID: uuid.New(), Username: "bea", PasswordHash: "hash", IsActive: false}
	active := &entity.User{ID: uuid.New(), Username: "caio", PasswordHash: "hash", IsActive: true}

	tests := []struct {
		name     string
		input    *usecase.LoginInput
		setup    func(f authServiceFixtures)
		expected error
	}{
		{
			name:     "empty input",
			input:    &usecase.LoginInput{},
			setup:    func(authServiceFixtures) {},
			expected: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "unknown user",
			input: &usecase.LoginInput{Username: "nobody", Password: "secret-pass"},
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound).Once()
			},
			expected: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: &usecase.LoginInput{Username: "caio", Password: "wrong-pass"},
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(ctx, "caio").Return(active, nil).Once()
				f.hasher.EXPECT().Check("wrong-pass", "hash").Return(false).Once()
			},
			expected: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "inactive user",
			input: &usecase.LoginInput{Username: "bea", Password: "secret-pass"},
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(ctx, "bea").Return(inactive, nil).Once()
				f.hasher.EXPECT().Check("secret-pass", "hash").Return(true).Once()
			},
			expected: domainerrors.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)
			tt.setup(f)

			output, err := f.service.Login(ctx, tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAuthService_Logout_StopsRealtime(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	session := testSession()

	f.realtime.EXPECT().StopRealtime(ctx, session.ID).Return(nil).Once()

	require.NoError(t, f.service.Logout(ctx, session))
	assert.ErrorIs(t, f.service.Logout(ctx, nil), domainerrors.ErrNoSession)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		f := createTestAuthService(t)
		expiresAt := time.Now().Add(time.Hour)
		f.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
			UserID:           userID,
			SessionID:        sessionID,
			Roles:            []string{"Viewer"},
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
		}, nil).Once()

		session, err := f.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, sessionID, session.ID)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, []string{"Viewer"}, session.Roles)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid")).Once()

		_, err := f.service.Authenticate(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	})
}
