package handler

import (
	"encoding/json"
	"net/http"

	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/response"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// CreateNotificationRequest represents the request body for creating a notification
type CreateNotificationRequest struct {
	Type         string          `json:"type" validate:"required,max=64"`
	Payload      json.RawMessage `json:"payload"`
	TargetUserID *uuid.UUID      `json:"target_user_id"`
}

// UnreadCountResponse is the unread badge of the caller
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ListNotifications returns the notifications visible to the caller
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	notifications, err := h.notificationUC.ListUserNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// GetUnreadCount returns how many visible notifications the caller has not read
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	count, err := h.notificationUC.GetUnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{Count: count})
}

// CreateNotification publishes a notification, broadcast when no target is given
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.InvalidSession(c)
	}

	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if len(req.Payload) > 0 && !json.Valid(req.Payload) {
		return response.BadRequest(c, "VALIDATION_ERROR", "payload must be valid JSON")
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		Type:         req.Type,
		Payload:      req.Payload,
		TargetUserID: req.TargetUserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// MarkAsRead records the caller's read receipt
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkAsRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearNotifications removes the caller's receipts and targeted notifications
func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	if err := h.notificationUC.ClearUserNotifications(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
