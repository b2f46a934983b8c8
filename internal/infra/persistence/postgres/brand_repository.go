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

// brandRepository implements the domain.BrandRepository interface using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		return errors.Wrap(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// FindAll retrieves every brand, newest first.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandMs []*model.BrandModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&brandMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandMs))
	for _, brandM := range brandMs {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindByID retrieves a single brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

// Update modifies an existing brand.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Updates(map[string]any{
			"brand_name":  brandM.BrandName,
			"brand_image": brandM.BrandImage,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// Delete removes a brand by its ID.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BrandModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:         data.ID,
		BrandName:  data.BrandName,
		BrandImage: data.BrandImage,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromBrandDomain converts a domain Brand entity to a GORM BrandModel.
func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:         data.ID,
		BrandName:  data.BrandName,
		BrandImage: data.BrandImage,
	}
}
