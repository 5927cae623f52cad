package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryGroupModel mirrors the 'inventory_groups' table.
type InventoryGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryGroupModel) TableName() string {
	return "inventory_groups"
}

// InventoryItemModel mirrors the 'inventory_items' table.
type InventoryItemModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GroupID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:text;not null"`
	Unit              string    `gorm:"type:varchar(20);not null"`
	Stock             float64   `gorm:"type:numeric;not null;default:0;check:chk_inventory_items_stock,stock >= 0"`
	LowStockThreshold float64   `gorm:"type:numeric;not null;default:0"`
	Height            *float64  `gorm:"type:numeric"`
	Width             *float64  `gorm:"type:numeric"`
	Thickness         *float64  `gorm:"type:numeric"`
	TotalM2           *float64  `gorm:"column:total_m2;type:numeric"`
	IdealStock        *float64  `gorm:"type:numeric"`
	Location          *string   `gorm:"type:text"`
	CreatedBy         uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// InventoryHistoryModel mirrors the 'inventory_history' table.
type InventoryHistoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Action        string    `gorm:"type:varchar(20);not null"`
	Delta         float64   `gorm:"type:numeric;not null"`
	PreviousValue float64   `gorm:"type:numeric;not null"`
	NewValue      float64   `gorm:"type:numeric;not null"`
	CreatedBy     uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryHistoryModel) TableName() string {
	return "inventory_history"
}
