package impl

import (
	"context"
	"testing"
	"time"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	mockRepo "printshop/internal/mocks/repository"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceFixtures struct {
	deviceRepo *mockRepo.MockDeviceRepository
	service    usecase.DeviceUsecase
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceFixtures {
	t.Helper()

	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceFixtures{
		deviceRepo: deviceRepo,
		service:    NewDeviceService(deviceRepo, clock.NewMockClock(now)),
		now:        now,
	}
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDevicesByEmployee(ctx, int64(3)).Return(nil, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(device *entity.StaffDevice) bool {
			return device.EmployeeID == 3 && device.Platform == "android" && device.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, 3, &usecase.DeviceInfo{FCMToken: "tok-1", DeviceID: "pixel", Platform: " Android "})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, fx.now, device.CreatedAt)
}

func TestDeviceService_RegisterDevice_RotatesToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	existing := &entity.StaffDevice{ID: uuid.New(), EmployeeID: 3, DeviceID: "pixel", FCMToken: "old", IsActive: true}
	refreshed := *existing
	refreshed.FCMToken = "new"

	fx.deviceRepo.EXPECT().FindDevicesByEmployee(ctx, int64(3)).Return([]*entity.StaffDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(&refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, 3, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "pixel", Platform: "android"})
	require.NoError(t, err)
	assert.Equal(t, "new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "nil info", info: nil},
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "pixel", Platform: "ios"}},
		{name: "missing device id", info: &usecase.DeviceInfo{FCMToken: "tok", Platform: "ios"}},
		{name: "unknown platform", info: &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), 3, tt.info)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDevicesByEmployee(ctx, int64(3)).Return(nil, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, 3, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "web"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeviceService_GetEmployeeDevices_ActiveOnly(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	active := &entity.StaffDevice{ID: uuid.New(), IsActive: true}
	fx.deviceRepo.EXPECT().FindDevicesByEmployee(ctx, int64(3)).Return([]*entity.StaffDevice{
		active,
		{ID: uuid.New(), IsActive: false},
	}, nil)

	devices, err := fx.service.GetEmployeeDevices(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []*entity.StaffDevice{active}, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	deviceID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx deviceFixtures)
		wantErr error
	}{
		{
			name: "own device",
			setup: func(fx deviceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.StaffDevice{ID: deviceID, EmployeeID: 3}, nil)
				fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(nil)
			},
		},
		{
			name: "missing device",
			setup: func(fx deviceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "device of another employee",
			setup: func(fx deviceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.StaffDevice{ID: deviceID, EmployeeID: 9}, nil)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.DeactivateDevice(context.Background(), 3, deviceID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}
