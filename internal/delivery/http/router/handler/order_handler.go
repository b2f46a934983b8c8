package handler

import (
	"net/http"
	"time"

	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for sales order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	ClientName    string             `json:"clientName" validate:"required"`
	ClientEmail   string             `json:"clientEmail" validate:"required,email"`
	ClientContact string             `json:"clientContact" validate:"required"`
	ClientAddress string             `json:"clientAddress" validate:"required"`
	OrderDate     time.Time          `json:"orderDate"`
	Products      []orderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// Create records a sale and returns the order with its receipt QR code.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Products))
	for _, line := range req.Products {
		productID, err := uuid.Parse(line.ID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
		}
		items = append(items, usecase.OrderItemInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientContact: req.ClientContact,
		ClientAddress: req.ClientAddress,
		OrderDate:     req.OrderDate,
		Items:         items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Order recorded successfully!",
		"order":     output.Order,
		"receiptQR": output.ReceiptQR,
	})
}

// Get returns a single order with its line items.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, order)
}

// List returns every order, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"orders": orders})
}
