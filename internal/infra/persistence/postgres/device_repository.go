package postgres

import (
	"context"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.AdminDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AdminDevice, error) {
	var deviceM model.AdminDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices for a specific user.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdminDevice, error) {
	var deviceMs []*model.AdminDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices by user")
	}

	return toDeviceDomainSlice(deviceMs), nil
}

// FindActiveDevices retrieves every active device across all admins.
func (repo *deviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.AdminDevice, error) {
	var deviceMs []*model.AdminDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&deviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	return toDeviceDomainSlice(deviceMs), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminDeviceModel{}).
		Where("id = ?", deviceID).
		Update("fcm_token", fcmToken)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive so it stops receiving alerts.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomainSlice(data []*model.AdminDeviceModel) []*entity.AdminDevice {
	devices := make([]*entity.AdminDevice, 0, len(data))
	for _, deviceM := range data {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// toDeviceDomain converts a GORM AdminDeviceModel to a domain AdminDevice entity.
func toDeviceDomain(data *model.AdminDeviceModel) *entity.AdminDevice {
	if data == nil {
		return nil
	}

	return &entity.AdminDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain AdminDevice entity to a GORM AdminDeviceModel.
func fromDeviceDomain(data *entity.AdminDevice) *model.AdminDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AdminDeviceModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FCMToken: data.FCMToken,
		DeviceID: data.DeviceID,
		Platform: data.Platform,
		IsActive: data.IsActive,
	}
}
