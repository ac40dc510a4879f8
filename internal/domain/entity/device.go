package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffDevice is a back-office device registered for stock and order push notifications.
type StaffDevice struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID int64     `json:"employee_id"` // Staff member who owns this device.
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging token.
	DeviceID   string    `json:"device_id"`   // Unique device identifier from the client.
	Platform   string    `json:"platform"`    // ios, android or web.
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
