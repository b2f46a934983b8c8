package handler

import (
	"mime/multipart"
	"net/http"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand catalog handlers.
type BrandHandler struct {
	uc usecase.BrandUsecase
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// formImage extracts an uploaded file from a multipart form field. A missing
// file is not an error; the caller proceeds without an image.
func formImage(c echo.Context, field string) (*usecase.UploadedImage, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	image := &usecase.UploadedImage{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	return image, func() { closeMultipartFile(file) }, nil
}

func closeMultipartFile(file multipart.File) {
	_ = file.Close()
}

// Create handles brand creation. The created brand is echoed back.
func (h *BrandHandler) Create(c echo.Context) error {
	brandName := c.FormValue("brandName")
	if brandName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("brandName is required")
	}

	image, cleanup, err := formImage(c, "brandImage")
	if err != nil {
		return err
	}
	defer cleanup()

	brand, err := h.uc.CreateBrand(c.Request().Context(), usecase.CreateBrandInput{
		BrandName: brandName,
		Image:     image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, brand)
}

// List returns every brand.
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"brands": brands})
}

// Get returns a single brand by ID.
func (h *BrandHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrBrandNotFound
	}

	brand, err := h.uc.GetBrand(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, brand)
}

// Update replaces the brand name and optionally its image.
func (h *BrandHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrBrandNotFound
	}

	brandName := c.FormValue("brandName")
	if brandName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("brandName is required")
	}

	image, cleanup, err := formImage(c, "brandImage")
	if err != nil {
		return err
	}
	defer cleanup()

	brand, err := h.uc.UpdateBrand(c.Request().Context(), usecase.UpdateBrandInput{
		ID:        id,
		BrandName: brandName,
		Image:     image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, brand)
}

// Delete removes a brand.
func (h *BrandHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrBrandNotFound
	}

	if err := h.uc.DeleteBrand(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Brand deleted successfully.")
}
