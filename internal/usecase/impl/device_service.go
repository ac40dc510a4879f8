package impl

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase"

	"github.com/google/uuid"
)

var allowedPlatforms = []string{"ios", "android", "web"}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      clock.Clock
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, clk clock.Clock) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		clock:      clk,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, employeeID int64, deviceInfo *usecase.DeviceInfo) (*entity.StaffDevice, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	platform := strings.ToLower(strings.TrimSpace(deviceInfo.Platform))
	if !slices.Contains(allowedPlatforms, platform) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("platform must be one of %s", strings.Join(allowedPlatforms, ", ")))
	}

	devices, err := s.deviceRepo.FindDevicesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by employee")
	}

	// Same physical device: only the token rotates
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := s.clock.Now()
	device := &entity.StaffDevice{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   platform,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithDetails("device already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// GetEmployeeDevices retrieves the active devices of a staff member
func (s *deviceService) GetEmployeeDevices(ctx context.Context, employeeID int64) ([]*entity.StaffDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by employee")
	}

	active := make([]*entity.StaffDevice, 0, len(devices))
	for _, device := range devices {
		if device.IsActive {
			active = append(active, device)
		}
	}

	return active, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, employeeID int64, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	// Devices of other staff members look missing
	if device.EmployeeID != employeeID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
