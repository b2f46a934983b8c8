package usecase

import (
	"context"
	"io"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadedImage carries an uploaded image file through the application layer
// without tying it to the HTTP multipart machinery.
type UploadedImage struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreateBrandInput defines the data required to create a brand.
type CreateBrandInput struct {
	BrandName string
	Image     *UploadedImage
}

// UpdateBrandInput defines the data required to update a brand.
type UpdateBrandInput struct {
	ID        uuid.UUID
	BrandName string
	Image     *UploadedImage
}

// BrandUsecase defines the interface for brand catalog operations.
type BrandUsecase interface {
	CreateBrand(ctx context.Context, input CreateBrandInput) (*entity.Brand, error)
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, input UpdateBrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}
