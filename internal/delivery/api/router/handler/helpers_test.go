package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creaglass/internal/delivery/api/validator"
	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/constants"
	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Roles:     []string{"Viewer"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// newContext builds an echo context as the auth middleware leaves it. A nil session means anonymous.
func newContext(t *testing.T, method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != nil {
		req = req.WithContext(deliverycontext.WithSession(req.Context(), session))
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Set(constants.ContextKeyRoles, session.Roles)
		c.Set(constants.ContextKeySession, session)
	}

	return c, rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
