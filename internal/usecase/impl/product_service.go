package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	assets      service.AssetStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	BrandRepo   repository.BrandRepository
	Assets      service.AssetStorage
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		brandRepo:   params.BrandRepo,
		assets:      params.Assets,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates the brand reference, uploads the product image and
// persists the product.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	imageURL, err := storeImage(ctx, srv.assets, "products", input.Image)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WithDetails(err.Error())
	}

	product := &entity.Product{
		ProductName:   input.ProductName,
		ProductImage:  imageURL,
		Category:      input.Category,
		BrandID:       input.BrandID,
		PurchasePrice: input.PurchasePrice,
		RetailPrice:   input.RetailPrice,
		OfferPer:      input.OfferPer,
		Stock:         input.Stock,
		Threshold:     input.Threshold,
		Description:   input.Description,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}
		srv.log(ctx).Error("Failed to create product", slog.String("productName", input.ProductName), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct returns a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	return product, nil
}

// ListProductsByBrand returns every product belonging to a brand.
func (srv *productService) ListProductsByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByBrand(ctx, brandID)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("brandID", brandID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return products, nil
}

// UpdateProduct replaces the product's fields and, when a new image is
// supplied, its image.
func (srv *productService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	imageURL, err := storeImage(ctx, srv.assets, "products", input.Image)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("productID", input.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WithDetails(err.Error())
	}

	product.ProductName = input.ProductName
	product.Category = input.Category
	product.BrandID = input.BrandID
	product.PurchasePrice = input.PurchasePrice
	product.RetailPrice = input.RetailPrice
	product.OfferPer = input.OfferPer
	product.Stock = input.Stock
	product.Threshold = input.Threshold
	product.Description = input.Description
	if imageURL != "" {
		product.ProductImage = imageURL
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", input.ID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return product, nil
}

// DeleteProduct removes a product by ID.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

// ListLowStock returns products at or under their restock threshold.
func (srv *productService) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindLowStock(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list low stock products", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return products, nil
}

// ListInvoiceProducts returns the trimmed projection for the sales screen.
func (srv *productService) ListInvoiceProducts(ctx context.Context) ([]*usecase.InvoiceProduct, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products for invoice", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	projections := make([]*usecase.InvoiceProduct, 0, len(products))
	for _, product := range products {
		projections = append(projections, &usecase.InvoiceProduct{
			ID:            product.ID,
			ProductName:   product.ProductName,
			OfferPer:      product.OfferPer,
			PurchasePrice: product.PurchasePrice,
			RetailPrice:   product.RetailPrice,
			Stock:         product.Stock,
		})
	}

	return projections, nil
}
