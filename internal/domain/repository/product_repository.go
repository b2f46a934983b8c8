package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock decrement would leave
	// the product with negative stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByBrand retrieves every product belonging to a brand.
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindLowStock retrieves products whose stock is at or under their threshold.
	FindLowStock(ctx context.Context) ([]*entity.Product, error)

	// FindAll retrieves every product; used for the invoice picker projection.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// DecrementStock atomically reduces stock for a product, failing when the
	// remaining stock would go negative.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
