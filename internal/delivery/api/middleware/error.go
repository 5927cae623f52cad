package middleware

import (
	"log/slog"

	"creaglass/internal/delivery/api/response"
	deliverycontext "creaglass/internal/delivery/context"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors that escape handlers
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// response.Error strips details of 5xx and auth errors
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	if errors.IsCanceled(err) {
		logger.Debug("[HTTP] Request canceled by client", slog.String("path", c.Request().URL.Path))
		_ = response.HandleAppError(c, domainerrors.ErrRequestCanceled)

		return
	}

	logger.Error("[HTTP] Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
