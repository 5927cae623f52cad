package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Roles:     []string{"Master"},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("valid token", func(t *testing.T) {
		uc := mockUc.NewMockAuthUsecase(t)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc})
		c, _ := newAuthContext("Bearer good")
		uc.EXPECT().Authenticate(mock.Anything, "good").Return(session, nil).Once()

		var reached bool
		err := m.Authenticate(func(c echo.Context) error {
			reached = true

			userID, ok := GetUserID(c)
			assert.True(t, ok)
			assert.Equal(t, session.UserID, userID)

			roles, ok := GetRoles(c)
			assert.True(t, ok)
			assert.Equal(t, []string{"Master"}, roles)

			assert.Same(t, session, deliverycontext.GetSession(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, reached)
	})

	tests := []struct {
		name   string
		header string
		setup  func(uc *mockUc.MockAuthUsecase)
	}{
		{name: "missing header", header: "", setup: func(*mockUc.MockAuthUsecase) {}},
		{name: "not bearer", header: "Basic abc", setup: func(*mockUc.MockAuthUsecase) {}},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(uc *mockUc.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrNoSession).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUc.NewMockAuthUsecase(t)
			tt.setup(uc)
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc})
			c, rec := newAuthContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{})
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newAuthContext("")
	c.Set("roles", []string{"Viewer"})
	require.NoError(t, m.RequireRole("Master")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthContext("")
	c.Set("roles", []string{"Viewer", "Master"})
	require.NoError(t, m.RequireRole("Master")(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
