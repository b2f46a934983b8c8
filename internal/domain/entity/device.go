package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminDevice is an administrator's device registered for low-stock push
// notifications.
type AdminDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token for push delivery.
	DeviceID  string    `json:"device_id"` // Unique device identifier from the client.
	Platform  string    `json:"platform"`  // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
