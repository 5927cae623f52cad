package handler

import (
	"net/http"

	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/response"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC   usecase.InventoryUsecase
	QRCodeService service.QRCodeService
}

// InventoryHandler handles inventory groups, items and labels
type InventoryHandler struct {
	inventoryUC   usecase.InventoryUsecase
	qrcodeService service.QRCodeService
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC:   params.InventoryUC,
		qrcodeService: params.QRCodeService,
	}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	GroupID           uuid.UUID `json:"group_id" validate:"required"`
	Name              string    `json:"name" validate:"required,max=200"`
	Unit              string    `json:"unit" validate:"required,max=20"`
	Stock             float64   `json:"stock" validate:"gte=0"`
	LowStockThreshold float64   `json:"low_stock_threshold" validate:"gte=0"`
	Height            *float64  `json:"height" validate:"omitempty,gt=0"`
	Width             *float64  `json:"width" validate:"omitempty,gt=0"`
	Thickness         *float64  `json:"thickness" validate:"omitempty,gt=0"`
	TotalM2           *float64  `json:"total_m2" validate:"omitempty,gte=0"`
	IdealStock        *float64  `json:"ideal_stock" validate:"omitempty,gte=0"`
	Location          *string   `json:"location" validate:"omitempty,max=100"`
}

// AdjustStockRequest represents the request body for a stock adjustment
type AdjustStockRequest struct {
	Delta float64 `json:"delta" validate:"required"`
}

// ScanLabelRequest carries the content read from a QR label
type ScanLabelRequest struct {
	Data string `json:"data" validate:"required"`
}

// ListGroups returns every group, seeding the defaults on first use
func (h *InventoryHandler) ListGroups(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	groups, err := h.inventoryUC.ListGroups(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups)
}

// CreateGroup creates a group
func (h *InventoryHandler) CreateGroup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.inventoryUC.CreateGroup(c.Request().Context(), req.Name, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, group)
}

// ListItems returns the items, optionally of a single group
func (h *InventoryHandler) ListItems(c echo.Context) error {
	var groupID *uuid.UUID
	if raw := c.QueryParam("groupId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
		}
		groupID = &parsed
	}

	items, err := h.inventoryUC.ListItems(c.Request().Context(), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetItem returns a single item
func (h *InventoryHandler) GetItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	item, err := h.inventoryUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateItem creates an item
func (h *InventoryHandler) CreateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.inventoryUC.CreateItem(c.Request().Context(), &usecase.CreateInventoryItemInput{
		GroupID:           req.GroupID,
		Name:              req.Name,
		Unit:              req.Unit,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		Height:            req.Height,
		Width:             req.Width,
		Thickness:         req.Thickness,
		TotalM2:           req.TotalM2,
		IdealStock:        req.IdealStock,
		Location:          req.Location,
		CreatedBy:         userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateItem applies a partial update
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var update entity.InventoryItemUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item update")
	}

	item, err := h.inventoryUC.UpdateItem(c.Request().Context(), itemID, &update, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteItem removes an item
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	if err := h.inventoryUC.DeleteItem(c.Request().Context(), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdjustStock adds a signed delta to the stock
func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.inventoryUC.AdjustStock(c.Request().Context(), itemID, req.Delta, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// GetItemHistory returns the audit trail of an item
func (h *InventoryHandler) GetItemHistory(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	history, err := h.inventoryUC.GetItemHistory(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// GetItemLabel renders the QR label of an item as PNG
func (h *InventoryHandler) GetItemLabel(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	png, err := h.inventoryUC.GetItemLabel(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// ScanItemLabel resolves scanned label content to its item
func (h *InventoryHandler) ScanItemLabel(c echo.Context) error {
	var req ScanLabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	itemID, err := h.qrcodeService.ParseItemLabel(req.Data)
	if err != nil {
		return response.BadRequest(c, "INVALID_LABEL", "Label does not reference an inventory item")
	}

	item, err := h.inventoryUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}
