package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll retrieves every order, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}
