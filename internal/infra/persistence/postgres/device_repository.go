package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a staff member.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.StaffDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.StaffDevice, error) {
	var deviceM model.StaffDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByEmployee retrieves all devices of a staff member (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByEmployee(ctx context.Context, employeeID int64) ([]*entity.StaffDevice, error) {
	return repo.findDevices(ctx, "failed to find devices by employee", "employee_id = ?", employeeID)
}

// FindActiveDevices retrieves every active staff device.
func (repo *deviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.StaffDevice, error) {
	return repo.findDevices(ctx, "failed to find active devices", "is_active = ?", true)
}

func (repo *deviceRepository) findDevices(ctx context.Context, errMsg string, query string, args ...any) ([]*entity.StaffDevice, error) {
	var deviceModels []*model.StaffDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	devices := make([]*entity.StaffDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StaffDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StaffDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteByTokens soft-deletes every device holding one of the tokens.
func (repo *deviceRepository) DeleteByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.StaffDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete devices by token")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM StaffDeviceModel to a domain StaffDevice entity.
func toDeviceDomain(data *model.StaffDeviceModel) *entity.StaffDevice {
	if data == nil {
		return nil
	}

	return &entity.StaffDevice{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain StaffDevice entity to a GORM StaffDeviceModel.
func fromDeviceDomain(data *entity.StaffDevice) *model.StaffDeviceModel {
	if data == nil {
		return nil
	}

	return &model.StaffDeviceModel{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
