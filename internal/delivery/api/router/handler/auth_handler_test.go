package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	session := testSession()
	expiresAt := time.Now().Add(12 * time.Hour).UTC()

	t.Run("success", func(t *testing.T) {
		uc := mockUc.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: uc})
		c, rec := newContext(t, http.MethodPost, "/auth/login", `{"username":"ana","password":"secret-pass"}`, nil)
		uc.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Username: "ana", Password: "secret-pass"}).
			Return(&usecase.LoginOutput{
				AccessToken: "access-token",
				ExpiresAt:   expiresAt,
				Session:     session,
				User:        &entity.User{ID: session.UserID, Username: "ana"},
			}, nil).
			Once()

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got LoginResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, "access-token", got.AccessToken)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, session.ID, got.SessionID)
		assert.Equal(t, "ana", got.Username)
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc := mockUc.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: uc})
		c, rec := newContext(t, http.MethodPost, "/auth/login", `{"username":"ana","password":"nope"}`, nil)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUc.NewMockAuthUsecase(t)})
		c, rec := newContext(t, http.MethodPost, "/auth/login", `{"username":"ana"}`, nil)

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc})
	session := testSession()

	c, rec := newContext(t, http.MethodPost, "/auth/logout", "", session)
	uc.EXPECT().Logout(mock.Anything, session).Return(nil).Once()

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
