package service

// QRCodeService defines the interface for order tracking QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG pointing at the order tracking page
	GenerateOrderQR(orderID int64) ([]byte, error)

	// ParseOrderQR extracts the order id from decoded QR content
	ParseOrderQR(qrData string) (int64, error)
}
