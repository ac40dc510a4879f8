package usecase

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for staff device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, employeeID int64, deviceInfo *DeviceInfo) (*entity.StaffDevice, error)

	// GetEmployeeDevices retrieves all devices of a staff member
	GetEmployeeDevices(ctx context.Context, employeeID int64) ([]*entity.StaffDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, employeeID int64, deviceID uuid.UUID) error
}
