package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientName    string    `gorm:"type:varchar(200);not null"`
	ClientEmail   string    `gorm:"type:varchar(255);not null"`
	ClientContact string    `gorm:"type:varchar(20);not null"`
	ClientAddress string    `gorm:"type:text;not null"`
	OrderDate     time.Time `gorm:"not null"`
	NetTotal      float64   `gorm:"not null"`
	Profit        float64   `gorm:"not null"`
	CreatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Prices are denormalized
// copies taken at sale time.
type OrderItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	ProductName   string    `gorm:"type:varchar(200);not null"`
	Quantity      int       `gorm:"not null"`
	OfferPer      float64
	PurchasePrice float64 `gorm:"not null"`
	RetailPrice   float64 `gorm:"not null"`
	Total         float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
