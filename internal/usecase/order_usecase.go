package usecase

import (
	"context"
	"time"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is a single product line on an incoming order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to record a sale.
type CreateOrderInput struct {
	ClientName    string
	ClientEmail   string
	ClientContact string
	ClientAddress string
	OrderDate     time.Time
	Items         []OrderItemInput
}

// CreateOrderOutput returns the recorded order and its receipt QR code.
type CreateOrderOutput struct {
	Order *entity.Order

	// ReceiptQR is the base64-encoded PNG of the receipt QR code.
	ReceiptQR string
}

// OrderUsecase defines the interface for sales order operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
