package impl

import (
	"context"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceService(deviceRepo *mockRepo.DeviceRepository) usecase.DeviceUsecase {
	return NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     testLogger(),
	})
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceRepo.On("CreateDevice", ctx, mock.MatchedBy(func(device *entity.AdminDevice) bool {
		return device.UserID == userID && device.IsActive
	})).Return(nil)

	device, err := svc.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "token-1",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", device.FCMToken)
	assert.True(t, device.IsActive)
}

// Re-registering an enrolled device refreshes the push token instead of
// failing the request.
func TestDeviceService_RegisterDevice_DuplicateRefreshesToken(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()
	existing := []*entity.AdminDevice{
		{ID: uuid.New(), UserID: userID, DeviceID: "iphone-15", FCMToken: "other"},
		{ID: existingID, UserID: userID, DeviceID: "pixel-8", FCMToken: "stale-token"},
	}

	deviceRepo.On("CreateDevice", ctx, mock.Anything).Return(repository.ErrDuplicateDevice)
	deviceRepo.On("FindDevicesByUser", ctx, userID).Return(existing, nil)
	deviceRepo.On("UpdateFCMToken", ctx, existingID, "fresh-token").Return(nil)

	device, err := svc.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "fresh-token",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
	deviceRepo.AssertExpectations(t)
}

func TestDeviceService_RegisterDevice_DuplicateWithoutMatch(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.On("CreateDevice", ctx, mock.Anything).Return(repository.ErrDuplicateDevice)
	deviceRepo.On("FindDevicesByUser", ctx, userID).Return([]*entity.AdminDevice{}, nil)

	_, err := svc.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "fresh-token",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_ListDevices(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.AdminDevice{{ID: uuid.New(), UserID: userID}}
	deviceRepo.On("FindDevicesByUser", ctx, userID).Return(devices, nil)

	got, err := svc.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	id := uuid.New()
	deviceRepo.On("UpdateFCMToken", ctx, id, "token").Return(repository.ErrDeviceNotFound)

	assert.ErrorIs(t, svc.UpdateFCMToken(ctx, id, "token"), domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	id := uuid.New()
	deviceRepo.On("DeactivateDevice", ctx, id).Return(nil)

	assert.NoError(t, svc.DeactivateDevice(ctx, id))
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	deviceRepo := &mockRepo.DeviceRepository{}
	svc := newTestDeviceService(deviceRepo)

	ctx := context.Background()
	id := uuid.New()
	deviceRepo.On("DeactivateDevice", ctx, id).Return(repository.ErrDeviceNotFound)

	assert.ErrorIs(t, svc.DeactivateDevice(ctx, id), domainerrors.ErrDeviceNotFound)
}
