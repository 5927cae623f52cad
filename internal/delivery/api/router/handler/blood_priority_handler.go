package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/response"
	deliverycontext "creaglass/internal/delivery/context"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/usecase"
	"creaglass/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BloodPriorityHandlerParams holds dependencies for BloodPriorityHandler, injected by Fx.
type BloodPriorityHandlerParams struct {
	fx.In

	BloodPriorityUC usecase.BloodPriorityUsecase
}

// BloodPriorityHandler serves the open, dwell, confirm workflow.
// Confirmation is refused until the dwell countdown of the read elapsed.
type BloodPriorityHandler struct {
	bloodPriorityUC usecase.BloodPriorityUsecase
	now             func() time.Time
}

// NewBloodPriorityHandler is the constructor for BloodPriorityHandler
func NewBloodPriorityHandler(params BloodPriorityHandlerParams) *BloodPriorityHandler {
	return &BloodPriorityHandler{
		bloodPriorityUC: params.BloodPriorityUC,
		now:             time.Now,
	}
}

// CreateBloodPriorityMessageRequest represents the request body for creating a message
type CreateBloodPriorityMessageRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}

// DwellDetails tells the client how long the countdown still runs.
type DwellDetails struct {
	RemainingMs int64 `json:"remaining_ms"`
}

// ListMessages returns every message, newest first
func (h *BloodPriorityHandler) ListMessages(c echo.Context) error {
	messages, err := h.bloodPriorityUC.ListMessages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// GetMessage returns a single message
func (h *BloodPriorityHandler) GetMessage(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.bloodPriorityUC.GetMessage(c.Request().Context(), messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message)
}

// CreateMessage publishes a new message
func (h *BloodPriorityHandler) CreateMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	var req CreateBloodPriorityMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.bloodPriorityUC.CreateMessage(c.Request().Context(), &usecase.CreateBloodPriorityMessageInput{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// GetUnreadMessages returns the messages the caller has not confirmed
func (h *BloodPriorityHandler) GetUnreadMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	messages, err := h.bloodPriorityUC.GetUnreadMessages(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// GetUserReads returns the read records of the caller
func (h *BloodPriorityHandler) GetUserReads(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	reads, err := h.bloodPriorityUC.GetUserReads(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reads)
}

// OpenMessage starts the dwell countdown of the caller
func (h *BloodPriorityHandler) OpenMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	read, err := h.bloodPriorityUC.OpenMessage(c.Request().Context(), messageID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, read)
}

// ConfirmRead confirms the caller's read once the dwell elapsed.
// With ?wait=true the request blocks for the rest of the countdown instead of failing.
func (h *BloodPriorityHandler) ConfirmRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	wait, _ := strconv.ParseBool(c.QueryParam("wait"))
	ctx := c.Request().Context()

	read, err := h.bloodPriorityUC.GetRead(ctx, messageID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if read == nil {
		return response.HandleAppError(c, domainerrors.ErrReadNotOpened)
	}

	if remaining := read.DwellRemaining(h.now()); remaining > 0 {
		if !wait {
			return response.AppErrorWithDetails(c, domainerrors.ErrDwellNotElapsed, DwellDetails{RemainingMs: remaining.Milliseconds()})
		}

		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Debug("[BloodPriority] Waiting for dwell",
			slog.String("message_id", messageID.String()),
			slog.String("remaining", util.FormatDuration(remaining)))

		timer := time.NewTimer(remaining)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return response.HandleAppError(c, domainerrors.ErrRequestCanceled)
		case <-timer.C:
		}
	}

	confirmed, err := h.bloodPriorityUC.ConfirmRead(ctx, messageID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmed)
}
