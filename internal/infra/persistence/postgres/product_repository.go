package postgres

import (
	"context"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBrandNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByBrand retrieves every product belonging to a brand.
func (repo *productRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by brand")
	}

	return toProductDomainSlice(productMs), nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"product_name":   productM.ProductName,
			"product_image":  productM.ProductImage,
			"category":       productM.Category,
			"brand_id":       productM.BrandID,
			"purchase_price": productM.PurchasePrice,
			"retail_price":   productM.RetailPrice,
			"offer_per":      productM.OfferPer,
			"stock":          productM.Stock,
			"threshold":      productM.Threshold,
			"description":    productM.Description,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBrandNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindLowStock retrieves products whose stock is at or under their threshold.
func (repo *productRepository) FindLowStock(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("stock <= threshold").
		Order("stock ASC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return toProductDomainSlice(productMs), nil
}

// FindAll retrieves every product.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productMs), nil
}

// DecrementStock atomically reduces stock for a product. The guard in the
// WHERE clause makes the decrement conditional, so two concurrent orders
// cannot both take the last unit.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		// Either the product does not exist or the remaining stock is short.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		ProductName:   data.ProductName,
		ProductImage:  data.ProductImage,
		Category:      data.Category,
		BrandID:       data.BrandID,
		PurchasePrice: data.PurchasePrice,
		RetailPrice:   data.RetailPrice,
		OfferPer:      data.OfferPer,
		Stock:         data.Stock,
		Threshold:     data.Threshold,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		ProductName:   data.ProductName,
		ProductImage:  data.ProductImage,
		Category:      data.Category,
		BrandID:       data.BrandID,
		PurchasePrice: data.PurchasePrice,
		RetailPrice:   data.RetailPrice,
		OfferPer:      data.OfferPer,
		Stock:         data.Stock,
		Threshold:     data.Threshold,
		Description:   data.Description,
	}
}
