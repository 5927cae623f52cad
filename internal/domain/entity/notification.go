// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationTypeLowStock is raised when an inventory item falls to its threshold.
const NotificationTypeLowStock = "inventory.lowStock"

// Notification is an in-app message. A nil TargetUserID means broadcast to everyone.
type Notification struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	PayloadJSON     json.RawMessage `json:"payload_json"`
	TargetUserID    *uuid.UUID      `json:"target_user_id,omitempty"`
	CreatedBySystem bool            `json:"created_by_system"`
	CreatedAt       time.Time       `json:"created_at"`
	ReadAt          *time.Time      `json:"read_at,omitempty"` // Derived per viewer from their read receipt.
}

// AddressedTo reports whether userID should see n.
func (n *Notification) AddressedTo(userID uuid.UUID) bool {
	return n.TargetUserID == nil || *n.TargetUserID == userID
}

// Record converts n to the row image carried by change events.
func (n *Notification) Record() Record {
	record := Record{
		"id":                n.ID.String(),
		"type":              n.Type,
		"payload_json":      n.PayloadJSON,
		"created_by_system": n.CreatedBySystem,
		"created_at":        n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(n.PayloadJSON) > 0 {
		var payload any
		if err := json.Unmarshal(n.PayloadJSON, &payload); err == nil {
			record["payload_json"] = payload
		}
	}
	if n.TargetUserID != nil {
		record["target_user_id"] = n.TargetUserID.String()
	} else {
		record["target_user_id"] = nil
	}

	return record
}

// NotificationRead is a per-user receipt. It is created lazily and never changed once set.
type NotificationRead struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	ReadAt         time.Time `json:"read_at"`
}

// LowStockPayload is the payload of an inventory.lowStock notification.
type LowStockPayload struct {
	ItemName  string  `json:"itemName"`
	ItemID    string  `json:"itemId"`
	Stock     float64 `json:"stock"`
	Threshold float64 `json:"threshold"`
}
