package usecase

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register an admin device
// for low-stock push alerts.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for admin device management.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*entity.AdminDevice, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AdminDevice, error)
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
