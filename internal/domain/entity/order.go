package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order records a sale to a client. NetTotal is the sum of line totals after
// offers; Profit is NetTotal minus the purchase cost of the sold units.
type Order struct {
	ID            uuid.UUID   `json:"_id"`
	ClientName    string      `json:"clientName"`
	ClientEmail   string      `json:"clientEmail"`
	ClientContact string      `json:"clientContact"`
	ClientAddress string      `json:"clientAddress"`
	OrderDate     time.Time   `json:"orderDate"`
	Products      []OrderItem `json:"products"`
	NetTotal      float64     `json:"netTotal"`
	Profit        float64     `json:"profit"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem is a single line of an order. Prices are captured at sale time so
// later catalog edits do not rewrite history.
type OrderItem struct {
	ProductID     uuid.UUID `json:"id"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	OfferPer      float64   `json:"offerPer"`
	PurchasePrice float64   `json:"purchasePrice"`
	RetailPrice   float64   `json:"retailPrice"`
	Total         float64   `json:"total"`
}
