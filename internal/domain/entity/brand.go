package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand groups products under a manufacturer or label.
type Brand struct {
	ID         uuid.UUID `json:"_id"`
	BrandName  string    `json:"brandName"`
	BrandImage string    `json:"brandImage"` // URL of the uploaded brand image in the asset bucket.
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
