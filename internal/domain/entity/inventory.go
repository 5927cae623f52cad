package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultInventoryGroups are created when the group list is empty.
func DefaultInventoryGroups() []string {
	return []string{"Glass", "Supplies", "Spare Parts"}
}

// InventoryGroup groups inventory items.
type InventoryGroup struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Record converts g to the row image carried by change events.
func (g *InventoryGroup) Record() Record {
	return Record{
		"id":         g.ID.String(),
		"name":       g.Name,
		"created_by": g.CreatedBy.String(),
		"created_at": g.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// InventoryItem is a stocked article.
type InventoryItem struct {
	ID                uuid.UUID `json:"id"`
	GroupID           uuid.UUID `json:"group_id"`
	Name              string    `json:"name"`
	Unit              string    `json:"unit"`
	Stock             float64   `json:"stock"`
	LowStockThreshold float64   `json:"low_stock_threshold"`
	Height            *float64  `json:"height,omitempty"`
	Width             *float64  `json:"width,omitempty"`
	Thickness         *float64  `json:"thickness,omitempty"`
	TotalM2           *float64  `json:"total_m2,omitempty"`
	IdealStock        *float64  `json:"ideal_stock,omitempty"`
	Location          *string   `json:"location,omitempty"`
	CreatedBy         uuid.UUID `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsLowStock reports whether stock is at or below the threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}

// Record converts i to the row image carried by change events.
func (i *InventoryItem) Record() Record {
	return Record{
		"id":                  i.ID.String(),
		"group_id":            i.GroupID.String(),
		"name":                i.Name,
		"unit":                i.Unit,
		"stock":               i.Stock,
		"low_stock_threshold": i.LowStockThreshold,
		"created_by":          i.CreatedBy.String(),
		"created_at":          i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// InventoryItemUpdate carries the fields to change. Nil fields are left untouched.
type InventoryItemUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Unit              *string  `json:"unit,omitempty"`
	Stock             *float64 `json:"stock,omitempty"`
	LowStockThreshold *float64 `json:"low_stock_threshold,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	Width             *float64 `json:"width,omitempty"`
	Thickness         *float64 `json:"thickness,omitempty"`
	TotalM2           *float64 `json:"total_m2,omitempty"`
	IdealStock        *float64 `json:"ideal_stock,omitempty"`
	Location          *string  `json:"location,omitempty"`
}

// Apply copies the set fields onto item.
func (u *InventoryItemUpdate) Apply(item *InventoryItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Unit != nil {
		item.Unit = *u.Unit
	}
	if u.Stock != nil {
		item.Stock = *u.Stock
	}
	if u.LowStockThreshold != nil {
		item.LowStockThreshold = *u.LowStockThreshold
	}
	if u.Height != nil {
		item.Height = u.Height
	}
	if u.Width != nil {
		item.Width = u.Width
	}
	if u.Thickness != nil {
		item.Thickness = u.Thickness
	}
	if u.TotalM2 != nil {
		item.TotalM2 = u.TotalM2
	}
	if u.IdealStock != nil {
		item.IdealStock = u.IdealStock
	}
	if u.Location != nil {
		item.Location = u.Location
	}
}

// InventoryAction names an entry in the item history.
type InventoryAction string

const (
	InventoryActionCreate      InventoryAction = "create"
	InventoryActionUpdate      InventoryAction = "update"
	InventoryActionAdjustStock InventoryAction = "adjustStock"
)

// InventoryHistory is an audit row of a stock change.
type InventoryHistory struct {
	ID            uuid.UUID       `json:"id"`
	ItemID        uuid.UUID       `json:"item_id"`
	Action        InventoryAction `json:"action"`
	Delta         float64         `json:"delta"`
	PreviousValue float64         `json:"previous_value"`
	NewValue      float64         `json:"new_value"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
