package handler

import (
	"net/http"
	"testing"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUc.MockUserUsecase) {
	uc := mockUc.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: uc}), uc
}

func TestUserHandler_ListUsers_HidesPasswordHash(t *testing.T) {
	h, uc := createTestUserHandler(t)
	users := []*entity.User{{ID: uuid.New(), Username: "ana", PasswordHash: "$2a$10$secret", UserType: entity.UserTypeViewer, IsActive: true}}

	c, rec := newContext(t, http.MethodGet, "/users", "", testSession())
	uc.EXPECT().ListUsers(mock.Anything).Return(users, nil).Once()

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ana"`)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_UpdateUser(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		h, uc := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPatch, "/users/"+userID.String(), `{"user_type":"Master"}`, testSession())
		c.SetParamNames("id")
		c.SetParamValues(userID.String())
		uc.EXPECT().UpdateUser(mock.Anything, userID, mock.MatchedBy(func(u *entity.UserUpdate) bool {
			return u.Username == nil && u.IsActive == nil && u.UserType != nil && *u.UserType == entity.UserTypeMaster
		})).Return(&entity.User{ID: userID, Username: "ana", UserType: entity.UserTypeMaster}, nil).Once()

		require.NoError(t, h.UpdateUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown user type", func(t *testing.T) {
		h, _ := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPatch, "/users/"+userID.String(), `{"user_type":"Root"}`, testSession())
		c.SetParamNames("id")
		c.SetParamValues(userID.String())

		require.NoError(t, h.UpdateUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPatch, "/users/"+userID.String(), `{"username":"bo"}`, testSession())
		c.SetParamNames("id")
		c.SetParamValues(userID.String())
		uc.EXPECT().UpdateUser(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrUserNotFound.WrapMessage("update user")).Once()

		require.NoError(t, h.UpdateUser(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_ActivateDeactivate(t *testing.T) {
	userID := uuid.New()

	t.Run("deactivate", func(t *testing.T) {
		h, uc := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPost, "/users/"+userID.String()+"/deactivate", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues(userID.String())
		uc.EXPECT().DeactivateUser(mock.Anything, userID).Return(nil).Once()

		require.NoError(t, h.DeactivateUser(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("activate", func(t *testing.T) {
		h, uc := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPost, "/users/"+userID.String()+"/activate", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues(userID.String())
		uc.EXPECT().ActivateUser(mock.Anything, userID).Return(nil).Once()

		require.NoError(t, h.ActivateUser(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := createTestUserHandler(t)
		c, rec := newContext(t, http.MethodPost, "/users/x/activate", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, h.ActivateUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
