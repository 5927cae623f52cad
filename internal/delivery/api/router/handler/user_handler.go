package handler

import (
	"context"
	"net/http"

	"creaglass/internal/delivery/api/response"
	"creaglass/internal/domain/entity"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler handles operator accounts
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// UpdateUserRequest represents the request body for a partial user update
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	UserType *string `json:"user_type" validate:"omitempty,oneof=Master Viewer"`
	IsActive *bool   `json:"is_active"`
}

// ListUsers returns the active users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns a single user
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser applies a partial update
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := &entity.UserUpdate{Username: req.Username, IsActive: req.IsActive}
	if req.UserType != nil {
		userType := entity.UserType(*req.UserType)
		update.UserType = &userType
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ActivateUser lets a user log in again
func (h *UserHandler) ActivateUser(c echo.Context) error {
	return h.setActive(c, h.userUC.ActivateUser)
}

// DeactivateUser blocks further logins of a user
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	return h.setActive(c, h.userUC.DeactivateUser)
}

func (h *UserHandler) setActive(c echo.Context, apply func(ctx context.Context, userID uuid.UUID) error) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := apply(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
