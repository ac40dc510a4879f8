package qrcode

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"printshop/internal/domain/service"
	"printshop/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://shop.local"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that links to {baseURL}/orders/{id}
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateOrderQR renders the order tracking link as a PNG
func (s *qrcodeService) GenerateOrderQR(orderID int64) ([]byte, error) {
	if orderID <= 0 {
		return nil, errors.Errorf("invalid order id: %d", orderID)
	}

	qrCode, err := qrcode.New(s.orderURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR extracts the order id from a tracking link
func (s *qrcodeService) ParseOrderQR(qrData string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code content")
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != "orders" {
		return 0, errors.Errorf("not an order tracking link: %s", qrData)
	}

	orderID, err := strconv.ParseInt(last, 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errors.Errorf("invalid order id in QR code: %q", last)
	}

	return orderID, nil
}

func (s *qrcodeService) orderURL(orderID int64) string {
	return s.baseURL + "/orders/" + strconv.FormatInt(orderID, 10)
}
