package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice enrolls an admin device for low-stock push alerts.
// Re-registering an existing device refreshes its FCM token instead of
// failing, since mobile clients re-enroll on every token rotation.
func (srv *deviceService) RegisterDevice(ctx context.Context, input usecase.RegisterDeviceInput) (*entity.AdminDevice, error) {
	device := &entity.AdminDevice{
		UserID:   input.UserID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	err := srv.deviceRepo.CreateDevice(ctx, device)
	if err == nil {
		srv.log(ctx).Debug("Device registered", slog.Any("deviceID", device.ID))

		return device, nil
	}
	if !errors.Is(err, repository.ErrDuplicateDevice) {
		srv.log(ctx).Error("Failed to register device", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	existing, err := srv.findUserDevice(ctx, input.UserID, input.DeviceID)
	if err != nil {
		return nil, err
	}

	if err := srv.deviceRepo.UpdateFCMToken(ctx, existing.ID, input.FCMToken); err != nil {
		srv.log(ctx).Error("Failed to refresh device token", slog.Any("deviceID", existing.ID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}
	existing.FCMToken = input.FCMToken

	return existing, nil
}

func (srv *deviceService) findUserDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.AdminDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err)
	}

	for _, device := range devices {
		if device.DeviceID == deviceID {
			return device, nil
		}
	}

	return nil, domainerrors.ErrDeviceNotFound
}

// ListDevices returns all devices registered by a user.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AdminDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return devices, nil
}

// UpdateFCMToken refreshes the push token for a device.
func (srv *deviceService) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	if err := srv.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}
		srv.log(ctx).Error("Failed to update FCM token", slog.Any("deviceID", deviceID), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

// DeactivateDevice stops a device from receiving alerts.
func (srv *deviceService) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	if err := srv.deviceRepo.DeactivateDevice(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}
		srv.log(ctx).Error("Failed to deactivate device", slog.Any("deviceID", id), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err)
	}

	return nil
}
