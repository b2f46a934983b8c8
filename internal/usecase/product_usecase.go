package usecase

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product.
type CreateProductInput struct {
	ProductName   string
	Category      string
	BrandID       uuid.UUID
	PurchasePrice float64
	RetailPrice   float64
	OfferPer      float64
	Stock         int
	Threshold     int
	Description   string
	Image         *UploadedImage
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	ID            uuid.UUID
	ProductName   string
	Category      string
	BrandID       uuid.UUID
	PurchasePrice float64
	RetailPrice   float64
	OfferPer      float64
	Stock         int
	Threshold     int
	Description   string
	Image         *UploadedImage
}

// InvoiceProduct is the trimmed product projection used by the invoice
// picker on the sales screen.
type InvoiceProduct struct {
	ID            uuid.UUID `json:"id"`
	ProductName   string    `json:"productName"`
	OfferPer      float64   `json:"offerPer"`
	PurchasePrice float64   `json:"purchasePrice"`
	RetailPrice   float64   `json:"retailPrice"`
	Stock         int       `json:"stock"`
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProductsByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ListLowStock returns products at or under their restock threshold.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)

	// ListInvoiceProducts returns the trimmed projection for the sales screen.
	ListInvoiceProducts(ctx context.Context) ([]*InvoiceProduct, error)
}
