package qrcode

import (
	"testing"

	"creaglass/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
				Size:                 tt.size,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			}})
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, service.size)
	assert.Equal(t, defaultBaseURL, service.baseURL)
}

func TestQRCodeService_GenerateItemLabel(t *testing.T) {
	service := newQRCodeService(256, "M", defaultBaseURL)

	qrBytes, err := service.GenerateItemLabel(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateItemLabel_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := newQRCodeService(size, "M", defaultBaseURL)

		qrBytes, err := service.GenerateItemLabel(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseItemLabel(t *testing.T) {
	service := newQRCodeService(256, "M", "https://app.example.com/items/")
	itemID := uuid.New()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"full label", "https://app.example.com/items/" + itemID.String(), false},
		{"bare id", itemID.String(), false},
		{"bare id with spaces", "  " + itemID.String() + "\n", false},
		{"foreign url", "https://other.example.com/items/" + itemID.String(), true},
		{"invalid id", "https://app.example.com/items/not-a-uuid", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseItemLabel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, itemID, got)
		})
	}
}

func TestQRCodeService_LabelRoundTrip(t *testing.T) {
	service := newQRCodeService(256, "H", defaultBaseURL)
	itemID := uuid.New()

	parsed, err := service.ParseItemLabel(service.labelContent(itemID))
	require.NoError(t, err)
	assert.Equal(t, itemID, parsed)
}
