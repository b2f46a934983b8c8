package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBrandNotFound is returned when a brand does not exist.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepository defines the standard operations for brand persistence.
type BrandRepository interface {
	// Create persists a new brand.
	Create(ctx context.Context, brand *entity.Brand) error

	// FindAll retrieves every brand, newest first.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// FindByID retrieves a single brand by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// Update modifies an existing brand.
	Update(ctx context.Context, brand *entity.Brand) error

	// Delete removes a brand by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
