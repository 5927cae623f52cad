package qrcode

import (
	"strings"

	"creaglass/config"
	"creaglass/internal/domain/service"
	"creaglass/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "creaglass://inventory/items"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// labelContent is what a scanner reads back from an item label.
func (s *qrcodeService) labelContent(itemID uuid.UUID) string {
	return s.baseURL + "/" + itemID.String()
}

// GenerateItemLabel renders the label of an inventory item as PNG.
func (s *qrcodeService) GenerateItemLabel(itemID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.labelContent(itemID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseItemLabel accepts either the full label URL or a bare item id.
func (s *qrcodeService) ParseItemLabel(qrData string) (uuid.UUID, error) {
	raw := strings.TrimSpace(qrData)
	if strings.Contains(raw, "://") {
		prefix := s.baseURL + "/"
		if !strings.HasPrefix(raw, prefix) {
			return uuid.Nil, errors.Errorf("unrecognized label %q", raw)
		}
		raw = strings.TrimPrefix(raw, prefix)
	}

	itemID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse item ID")
	}

	return itemID, nil
}
