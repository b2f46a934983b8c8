package handler

import (
	"net/http"
	"strconv"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// productForm reads the multipart fields shared by create and update.
type productForm struct {
	ProductName   string
	Category      string
	BrandID       uuid.UUID
	PurchasePrice float64
	RetailPrice   float64
	OfferPer      float64
	Stock         int
	Threshold     int
	Description   string
}

func bindProductForm(c echo.Context) (*productForm, error) {
	form := &productForm{
		ProductName: c.FormValue("productName"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
	}

	if form.ProductName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productName is required")
	}

	brandID, err := uuid.Parse(c.FormValue("brandId"))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("brandId is invalid")
	}
	form.BrandID = brandID

	if form.PurchasePrice, err = strconv.ParseFloat(c.FormValue("purchasePrice"), 64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("purchasePrice is invalid")
	}
	if form.RetailPrice, err = strconv.ParseFloat(c.FormValue("retailPrice"), 64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("retailPrice is invalid")
	}
	if offer := c.FormValue("offerPer"); offer != "" {
		if form.OfferPer, err = strconv.ParseFloat(offer, 64); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("offerPer is invalid")
		}
	}
	if form.Stock, err = strconv.Atoi(c.FormValue("stock")); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock is invalid")
	}
	if threshold := c.FormValue("threshold"); threshold != "" {
		if form.Threshold, err = strconv.Atoi(threshold); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("threshold is invalid")
		}
	}

	return form, nil
}

// Create handles product creation.
func (h *ProductHandler) Create(c echo.Context) error {
	form, err := bindProductForm(c)
	if err != nil {
		return err
	}

	image, cleanup, err := formImage(c, "productImage")
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		ProductName:   form.ProductName,
		Category:      form.Category,
		BrandID:       form.BrandID,
		PurchasePrice: form.PurchasePrice,
		RetailPrice:   form.RetailPrice,
		OfferPer:      form.OfferPer,
		Stock:         form.Stock,
		Threshold:     form.Threshold,
		Description:   form.Description,
		Image:         image,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Product added successfully!")
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// ListByBrand returns every product belonging to a brand.
func (h *ProductHandler) ListByBrand(c echo.Context) error {
	brandID, err := uuid.Parse(c.Param("brandID"))
	if err != nil {
		return domainerrors.ErrBrandNotFound
	}

	products, err := h.uc.ListProductsByBrand(c.Request().Context(), brandID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": products})
}

// Update replaces a product's fields.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	form, err := bindProductForm(c)
	if err != nil {
		return err
	}

	image, cleanup, err := formImage(c, "productImage")
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := h.uc.UpdateProduct(c.Request().Context(), usecase.UpdateProductInput{
		ID:            id,
		ProductName:   form.ProductName,
		Category:      form.Category,
		BrandID:       form.BrandID,
		PurchasePrice: form.PurchasePrice,
		RetailPrice:   form.RetailPrice,
		OfferPer:      form.OfferPer,
		Stock:         form.Stock,
		Threshold:     form.Threshold,
		Description:   form.Description,
		Image:         image,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Product updated successfully")
}

// Delete removes a product. The status codes and messages on this path
// differ from the rest of the product API; they are pinned by the clients.
func (h *ProductHandler) Delete(c echo.Context) error {
	rawID := c.Param("id")
	if rawID == "" {
		return response.Message(c, http.StatusBadRequest, "Product ID is required.")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return response.Message(c, http.StatusNotFound, "Product not found.")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return response.Message(c, http.StatusNotFound, "Product not found.")
		}

		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully.")
}

// ListLowStock returns products at or under their restock threshold.
func (h *ProductHandler) ListLowStock(c echo.Context) error {
	products, err := h.uc.ListLowStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": products})
}

// ListInvoice returns the trimmed product projection for the sales screen.
func (h *ProductHandler) ListInvoice(c echo.Context) error {
	products, err := h.uc.ListInvoiceProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": products})
}
