package qrcode

import (
	"testing"

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://print.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://print.example.com/")

	qrBytes, err := service.GenerateOrderQR(42)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderQR_InvalidID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateOrderQR(0)
	assert.Error(t, err)
}

func TestQRCodeService_OrderURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://print.example.com/").(*qrcodeService)

	assert.Equal(t, "https://print.example.com/orders/42", svc.orderURL(42))
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://print.example.com")

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{name: "tracking link", data: "https://print.example.com/orders/42", want: 42},
		{name: "trailing slash", data: "https://print.example.com/orders/7/", want: 7},
		{name: "other path", data: "https://print.example.com/products/42", wantErr: true},
		{name: "non numeric id", data: "https://print.example.com/orders/abc", wantErr: true},
		{name: "zero id", data: "https://print.example.com/orders/0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseOrderQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://print.example.com").(*qrcodeService)

	parsed, err := svc.ParseOrderQR(svc.orderURL(1001))
	require.NoError(t, err)
	assert.Equal(t, int64(1001), parsed)
}
