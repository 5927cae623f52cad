package handler

import (
	"log/slog"
	"net/http"

	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/response"
	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	RealtimeUC usecase.RealtimeUsecase
	Logger     *slog.Logger
}

// RealtimeHandler exposes the session gate of the realtime layer.
type RealtimeHandler struct {
	realtimeUC usecase.RealtimeUsecase
	logger     *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		realtimeUC: params.RealtimeUC,
		logger:     params.Logger,
	}
}

// StartRealtimeRequest carries the device that receives local alerts.
type StartRealtimeRequest struct {
	DeviceToken string `json:"device_token"`
	Platform    string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// RealtimeSessionResponse describes the subscriptions of a realtime session.
type RealtimeSessionResponse struct {
	SessionID   uuid.UUID           `json:"session_id"`
	UserID      uuid.UUID           `json:"user_id"`
	Collections []entity.Collection `json:"collections"`
	Open        int                 `json:"open"`
}

// RouteChangeResponse lists the cache keys a change makes stale.
type RouteChangeResponse struct {
	EventID string   `json:"event_id"`
	Keys    []string `json:"keys"`
}

func toRealtimeSessionResponse(subs usecase.RealtimeSubscriptions) RealtimeSessionResponse {
	return RealtimeSessionResponse{
		SessionID:   subs.SessionID(),
		UserID:      subs.UserID(),
		Collections: subs.Collections(),
		Open:        subs.Open(),
	}
}

// StartRealtime subscribes the caller's session to the change feed
func (h *RealtimeHandler) StartRealtime(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.InvalidSession(c)
	}

	var req StartRealtimeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid realtime input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// The token-derived session stays untouched; the device belongs to this realtime session only.
	withDevice := *session
	withDevice.DeviceToken = req.DeviceToken
	withDevice.Platform = entity.Platform(req.Platform)

	ctx := deliverycontext.WithSession(c.Request().Context(), &withDevice)
	subs, err := h.realtimeUC.StartRealtime(ctx, &withDevice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRealtimeSessionResponse(subs))
}

// RestartRealtime re-subscribes every collection of the caller's session
func (h *RealtimeHandler) RestartRealtime(c echo.Context) error {
	sessionID, err := h.ownedSessionID(c)
	if err != nil {
		return err
	}
	if sessionID == uuid.Nil {
		return nil
	}

	subs, err := h.realtimeUC.RestartRealtime(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRealtimeSessionResponse(subs))
}

// StopRealtime closes the caller's realtime session
func (h *RealtimeHandler) StopRealtime(c echo.Context) error {
	sessionID, err := h.ownedSessionID(c)
	if err != nil {
		return err
	}
	if sessionID == uuid.Nil {
		return nil
	}

	if err := h.realtimeUC.StopRealtime(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RouteChange returns the cache keys a change event would invalidate
func (h *RealtimeHandler) RouteChange(c echo.Context) error {
	var wire entity.WireChange
	if err := c.Bind(&wire); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change event")
	}

	event, err := wire.ToChangeEvent()
	if err != nil {
		return response.BadRequest(c, "MALFORMED_EVENT", err.Error())
	}

	keys := h.realtimeUC.RouteChange(event)
	resp := RouteChangeResponse{EventID: event.ID, Keys: make([]string, 0, len(keys))}
	for _, key := range keys {
		resp.Keys = append(resp.Keys, key.String())
	}

	return response.Success(c, http.StatusOK, resp)
}

// ownedSessionID parses the :id parameter and checks it is the caller's session.
// A nil id means the response was already written.
func (h *RealtimeHandler) ownedSessionID(c echo.Context) (uuid.UUID, error) {
	session, ok := middleware.GetSession(c)
	if !ok {
		return uuid.Nil, response.InvalidSession(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if sessionID != session.ID {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("[Realtime] Session of another token",
			slog.String("session_id", sessionID.String()),
		)

		return uuid.Nil, response.Forbidden(c, "SESSION_FORBIDDEN", "Realtime session belongs to another token")
	}

	return sessionID, nil
}
