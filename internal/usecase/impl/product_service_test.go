package impl

import (
	"context"
	"strings"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceMocks struct {
	productRepo *mockRepo.ProductRepository
	brandRepo   *mockRepo.BrandRepository
	assets      *mockSvc.AssetStorage
}

func newTestProductService(m *productServiceMocks) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{
		ProductRepo: m.productRepo,
		BrandRepo:   m.brandRepo,
		Assets:      m.assets,
		Logger:      testLogger(),
	})
}

func defaultProductMocks() *productServiceMocks {
	return &productServiceMocks{
		productRepo: &mockRepo.ProductRepository{},
		brandRepo:   &mockRepo.BrandRepository{},
		assets:      &mockSvc.AssetStorage{},
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	brandID := uuid.New()
	m.brandRepo.On("FindByID", ctx, brandID).Return(&entity.Brand{ID: brandID, BrandName: "Acme"}, nil)
	m.assets.On("Store", ctx, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "products/") && strings.HasSuffix(name, ".jpg")
	}), "image/jpeg", mock.Anything).Return("https://assets.example.com/products/x.jpg", nil)
	m.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		ProductName:   "Widget",
		Category:      "tools",
		BrandID:       brandID,
		PurchasePrice: 60,
		RetailPrice:   100,
		OfferPer:      10,
		Stock:         40,
		Threshold:     5,
		Description:   "A widget",
		Image: &usecase.UploadedImage{
			Filename:    "widget.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpg-bytes"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.ProductName)
	assert.Equal(t, brandID, product.BrandID)
	assert.Equal(t, "https://assets.example.com/products/x.jpg", product.ProductImage)
}

func TestProductService_CreateProduct_UnknownBrand(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	brandID := uuid.New()
	m.brandRepo.On("FindByID", ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	_, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		ProductName: "Widget",
		BrandID:     brandID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
	m.productRepo.AssertNotCalled(t, "Create")
	m.assets.AssertNotCalled(t, "Store")
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	id := uuid.New()
	m.productRepo.On("FindByID", ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_KeepsImageWhenNoneUploaded(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	id := uuid.New()
	brandID := uuid.New()
	existing := &entity.Product{
		ID:           id,
		ProductName:  "Widget",
		ProductImage: "https://assets.example.com/products/old.jpg",
		BrandID:      brandID,
	}
	m.productRepo.On("FindByID", ctx, id).Return(existing, nil)
	m.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{
		ID:          id,
		ProductName: "Widget v2",
		BrandID:     brandID,
		RetailPrice: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", product.ProductName)
	assert.InDelta(t, 120.0, product.RetailPrice, 1e-9)
	assert.Equal(t, "https://assets.example.com/products/old.jpg", product.ProductImage)
	m.assets.AssertNotCalled(t, "Store")
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	id := uuid.New()
	m.productRepo.On("FindByID", ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{ID: id, ProductName: "Widget"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	id := uuid.New()
	m.productRepo.On("Delete", ctx, id).Return(repository.ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, id), domainerrors.ErrProductNotFound)
}

func TestProductService_ListProductsByBrand(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	brandID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), BrandID: brandID}}
	m.productRepo.On("FindByBrand", ctx, brandID).Return(products, nil)

	got, err := svc.ListProductsByBrand(ctx, brandID)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_ListLowStock(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), ProductName: "Widget", Stock: 2, Threshold: 5},
	}
	m.productRepo.On("FindLowStock", ctx).Return(products, nil)

	got, err := svc.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_ListInvoiceProducts_Projection(t *testing.T) {
	m := defaultProductMocks()
	svc := newTestProductService(m)

	ctx := context.Background()
	productID := uuid.New()
	products := []*entity.Product{{
		ID:            productID,
		ProductName:   "Widget",
		ProductImage:  "https://assets.example.com/products/x.jpg",
		Category:      "tools",
		Description:   "A widget",
		PurchasePrice: 60,
		RetailPrice:   100,
		OfferPer:      10,
		Stock:         40,
		Threshold:     5,
	}}
	m.productRepo.On("FindAll", ctx).Return(products, nil)

	got, err := svc.ListInvoiceProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// The projection carries only the fields the sales screen needs.
	assert.Equal(t, &usecase.InvoiceProduct{
		ID:            productID,
		ProductName:   "Widget",
		OfferPer:      10,
		PurchasePrice: 60,
		RetailPrice:   100,
		Stock:         40,
	}, got[0])
}
