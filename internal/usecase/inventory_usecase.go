package usecase

import (
	"context"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInventoryItemInput defines the data required to create an item.
type CreateInventoryItemInput struct {
	GroupID           uuid.UUID
	Name              string
	Unit              string
	Stock             float64
	LowStockThreshold float64
	Height            *float64
	Width             *float64
	Thickness         *float64
	TotalM2           *float64
	IdealStock        *float64
	Location          *string
	CreatedBy         uuid.UUID
}

// InventoryUsecase manages groups and items and raises low-stock notifications.
type InventoryUsecase interface {
	ListGroups(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryGroup, error)
	CreateGroup(ctx context.Context, name string, userID uuid.UUID) (*entity.InventoryGroup, error)
	GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.InventoryGroup, error)

	ListItems(ctx context.Context, groupID *uuid.UUID) ([]*entity.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*entity.InventoryItem, error)
	CreateItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, update *entity.InventoryItemUpdate, userID uuid.UUID) (*entity.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// AdjustStock adds delta to the stock and records a history row.
	AdjustStock(ctx context.Context, itemID uuid.UUID, delta float64, userID uuid.UUID) (*entity.InventoryItem, error)
	GetItemHistory(ctx context.Context, itemID uuid.UUID) ([]*entity.InventoryHistory, error)

	// GetItemLabel renders the QR label of an item as PNG.
	GetItemLabel(ctx context.Context, itemID uuid.UUID) ([]byte, error)
}
