package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "creaglass/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error with details", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("stock must be >= 0"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "stock must be >= 0", body.Error.Details)
	})

	t.Run("plain error is returned", func(t *testing.T) {
		c, rec := newTestContext()
		cause := errors.New("connection reset")

		err := HandleAppError(c, cause)

		require.ErrorIs(t, err, cause)
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestError_HidesDetailsOnAuthFailures(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, http.StatusForbidden, "ROLE_REQUIRED", "Access denied", map[string]string{"role": "Master"}))

	assert.NotContains(t, rec.Body.String(), "Master")
}

func TestPNG(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, PNG(c, []byte("\x89PNG")))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, labelCacheControl, rec.Header().Get(echo.HeaderCacheControl))
}
