package repository

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for staff device database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a staff member.
	CreateDevice(ctx context.Context, device *entity.StaffDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.StaffDevice, error)

	// FindDevicesByEmployee retrieves all devices of a staff member (including inactive).
	FindDevicesByEmployee(ctx context.Context, employeeID int64) ([]*entity.StaffDevice, error)

	// FindActiveDevices retrieves every active staff device.
	FindActiveDevices(ctx context.Context) ([]*entity.StaffDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteByTokens removes every device holding one of the tokens (soft delete).
	DeleteByTokens(ctx context.Context, tokens []string) (int64, error)
}
