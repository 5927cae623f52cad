package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateItemLabel generates a QR label for an inventory item
	GenerateItemLabel(itemID uuid.UUID) ([]byte, error)

	// ParseItemLabel parses scanned label data and returns the item ID
	ParseItemLabel(qrData string) (uuid.UUID, error)
}
