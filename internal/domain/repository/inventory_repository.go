package repository

import (
	"context"
	"errors"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for inventory persistence.
var (
	ErrInventoryGroupNotFound = errors.New("inventory group not found")
	ErrInventoryItemNotFound  = errors.New("inventory item not found")
)

// InventoryRepository persists groups, items and their history.
type InventoryRepository interface {
	ListGroups(ctx context.Context) ([]*entity.InventoryGroup, error)
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.InventoryGroup, error)
	FindGroupsByNames(ctx context.Context, names []string) ([]*entity.InventoryGroup, error)
	CreateGroup(ctx context.Context, group *entity.InventoryGroup) error

	ListItems(ctx context.Context, groupID *uuid.UUID) ([]*entity.InventoryItem, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	// FindItemByIDForUpdate locks the row for the rest of the transaction.
	FindItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	CreateItem(ctx context.Context, item *entity.InventoryItem) error
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)

	CreateHistory(ctx context.Context, history *entity.InventoryHistory) error
	ListHistory(ctx context.Context, itemID uuid.UUID) ([]*entity.InventoryHistory, error)
}
