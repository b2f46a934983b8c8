package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

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

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
	assets    service.AssetStorage
	logger    *slog.Logger
}

// BrandServiceParams holds dependencies for BrandService, injected by Fx.
type BrandServiceParams struct {
	fx.In

	BrandRepo repository.BrandRepository
	Assets    service.AssetStorage
	Logger    *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		brandRepo: params.BrandRepo,
		assets:    params.Assets,
		logger:    params.Logger,
	}
}

func (srv *brandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeImage uploads an image under a collision-free object name and returns
// its public URL. A nil image means the caller keeps the existing URL.
func storeImage(ctx context.Context, assets service.AssetStorage, folder string, image *usecase.UploadedImage) (string, error) {
	if image == nil {
		return "", nil
	}

	name := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(image.Filename))

	return assets.Store(ctx, name, image.ContentType, image.Content)
}

// CreateBrand uploads the brand image (if any) and persists the brand.
func (srv *brandService) CreateBrand(ctx context.Context, input usecase.CreateBrandInput) (*entity.Brand, error) {
	imageURL, err := storeImage(ctx, srv.assets, "brands", input.Image)
	if err != nil {
		srv.log(ctx).Error("Failed to store brand image", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WithDetails(err.Error())
	}

	brand := &entity.Brand{
		BrandName:  input.BrandName,
		BrandImage: imageURL,
	}

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		srv.log(ctx).Error("Failed to create brand", slog.String("brandName", input.BrandName), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	srv.log(ctx).Debug("Brand created", slog.Any("brandID", brand.ID))

	return brand, nil
}

// ListBrands returns every brand, newest first.
func (srv *brandService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list brands", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return brands, nil
}

// GetBrand returns a single brand by ID.
func (srv *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	return brand, nil
}

// UpdateBrand replaces the brand's name and, when a new image is supplied,
// its image.
func (srv *brandService) UpdateBrand(ctx context.Context, input usecase.UpdateBrandInput) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	imageURL, err := storeImage(ctx, srv.assets, "brands", input.Image)
	if err != nil {
		srv.log(ctx).Error("Failed to store brand image", slog.Any("brandID", input.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WithDetails(err.Error())
	}

	brand.BrandName = input.BrandName
	if imageURL != "" {
		brand.BrandImage = imageURL
	}

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}
		srv.log(ctx).Error("Failed to update brand", slog.Any("brandID", input.ID), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return brand, nil
}

// DeleteBrand removes a brand by ID.
func (srv *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrBrandNotFound
		}
		srv.log(ctx).Error("Failed to delete brand", slog.Any("brandID", id), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err)
	}

	return nil
}
