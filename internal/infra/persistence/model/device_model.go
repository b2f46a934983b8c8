package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminDeviceModel mirrors the 'admin_devices' table. UserID references users.id (UUID).
type AdminDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_devices_user_device,priority:1"`
	FCMToken  string    `gorm:"type:text;not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_admin_devices_user_device,priority:2"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminDeviceModel) TableName() string {
	return "admin_devices"
}
