package service

import (
	"context"
)

// InventoryEvent is published to the inventory topic when an order is
// recorded or a product crosses its low-stock threshold.
type InventoryEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	Type        string  `json:"type"`                 // constants.EventOrderCreated or constants.EventStockLow
	OrderID     string  `json:"order_id,omitempty"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Threshold   int     `json:"threshold,omitempty"`
	NetTotal    float64 `json:"net_total,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishInventoryEvent publishes an inventory event for async processing.
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
