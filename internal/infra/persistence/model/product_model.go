package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The check constraint keeps the
// stock decrement race from driving stock negative under concurrent orders.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductName   string    `gorm:"type:varchar(200);not null"`
	ProductImage  string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(100);not null"`
	BrandID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchasePrice float64   `gorm:"not null"`
	RetailPrice   float64   `gorm:"not null"`
	OfferPer      float64
	Stock         int    `gorm:"not null;check:stock >= 0"`
	Threshold     int    `gorm:"not null"`
	Description   string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
