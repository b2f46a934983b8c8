package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable catalog item. Threshold marks the stock level at or
// below which the product counts as low stock for the dashboard and alerting.
type Product struct {
	ID            uuid.UUID `json:"_id"`
	ProductName   string    `json:"productName"`
	ProductImage  string    `json:"productImage"`
	Category      string    `json:"category"`
	BrandID       uuid.UUID `json:"brandId"`
	PurchasePrice float64   `json:"purchasePrice"`
	RetailPrice   float64   `json:"retailPrice"`
	OfferPer      float64   `json:"offerPer"` // Discount percentage applied at sale time.
	Stock         int       `json:"stock"`
	Threshold     int       `json:"threshold"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the product is at or under its threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.Threshold
}

// SalePrice returns the retail price after the offer percentage.
func (p *Product) SalePrice() float64 {
	return p.RetailPrice * (1 - p.OfferPer/100)
}
