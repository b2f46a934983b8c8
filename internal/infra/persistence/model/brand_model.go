package model

import (
	"time"

	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BrandName  string    `gorm:"type:varchar(100);unique;not null"`
	BrandImage string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Products []ProductModel `gorm:"foreignKey:BrandID"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
