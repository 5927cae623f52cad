// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	realtime     usecase.RealtimeUsecase
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Realtime     usecase.RealtimeUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		realtime:     params.Realtime,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Inactive accounts are reported only after a correct password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}

	roles := entity.UserTypes{user.UserType}.ToStrings()
	sessionID := uuid.New()

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, sessionID, roles)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID), slog.Any("sessionID", sessionID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Session: &entity.Session{
			ID:        sessionID,
			UserID:    user.ID,
			Roles:     roles,
			ExpiresAt: expiresAt,
		},
		User: user,
	}, nil
}

// Logout tears down the realtime subscriptions of session. The token itself stays valid until it expires.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return errors.Wrap(domainerrors.ErrNoSession, "logout")
	}

	if err := srv.realtime.StopRealtime(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to stop realtime on logout")
	}
	srv.log(ctx).Info("User logged out", slog.Any("userID", session.UserID), slog.Any("sessionID", session.ID))

	return nil
}

// Authenticate validates accessToken and rebuilds the session it was issued for.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNoSession, err.Error())
	}

	session := &entity.Session{
		ID:     claims.SessionID,
		UserID: claims.UserID,
		Roles:  claims.Roles,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if !session.Active(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrNoSession, "session expired")
	}

	return session, nil
}
