package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/constants"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	deviceRepo   repository.DeviceRepository
	publisher    service.EventPublisher
	notification service.NotificationService
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	DeviceRepo   repository.DeviceRepository
	Publisher    service.EventPublisher
	Notification service.NotificationService `optional:"true"`
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		deviceRepo:   params.DeviceRepo,
		publisher:    params.Publisher,
		notification: params.Notification,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder records a sale atomically: every line item's stock is
// decremented and the order persisted in one transaction, so a failed
// decrement leaves no partial order behind. Events and push alerts fire
// only after the transaction commits.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one product")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	var recordedOrder *entity.Order
	var lowStockProducts []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		items := make([]entity.OrderItem, 0, len(input.Items))
		var netTotal, profit float64

		for _, line := range input.Items {
			if line.Quantity <= 0 {
				return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
			}

			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to load product")
			}

			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				switch {
				case errors.Is(err, repository.ErrInsufficientStock):
					return domainerrors.ErrInsufficientStock.WithDetails(product.ProductName)
				case errors.Is(err, repository.ErrProductNotFound):
					return domainerrors.ErrProductNotFound
				default:
					return errors.Wrap(err, "failed to decrement stock")
				}
			}

			salePrice := product.SalePrice()
			lineTotal := salePrice * float64(line.Quantity)
			netTotal += lineTotal
			profit += (salePrice - product.PurchasePrice) * float64(line.Quantity)

			items = append(items, entity.OrderItem{
				ProductID:     product.ID,
				ProductName:   product.ProductName,
				Quantity:      line.Quantity,
				OfferPer:      product.OfferPer,
				PurchasePrice: product.PurchasePrice,
				RetailPrice:   product.RetailPrice,
				Total:         lineTotal,
			})

			// Alert once, on the crossing into low stock.
			remaining := product.Stock - line.Quantity
			if remaining <= product.Threshold && product.Stock > product.Threshold {
				alerted := *product
				alerted.Stock = remaining
				lowStockProducts = append(lowStockProducts, &alerted)
			}
		}

		order := &entity.Order{
			ClientName:    input.ClientName,
			ClientEmail:   input.ClientEmail,
			ClientContact: input.ClientContact,
			ClientAddress: input.ClientAddress,
			OrderDate:     orderDate,
			Products:      items,
			NetTotal:      netTotal,
			Profit:        profit,
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		recordedOrder = order

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute order transaction", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	// Side effects after commit. Failures here are logged, never surfaced;
	// the order is already recorded.
	srv.publishOrderCreated(ctx, recordedOrder)
	for _, product := range lowStockProducts {
		srv.alertLowStock(ctx, product)
	}

	receiptQR, err := srv.qrService.GenerateReceiptQR(recordedOrder.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate receipt QR", slog.Any("orderID", recordedOrder.ID), slog.Any("error", err))
		receiptQR = nil
	}

	output := &usecase.CreateOrderOutput{Order: recordedOrder}
	if receiptQR != nil {
		output.ReceiptQR = base64.StdEncoding.EncodeToString(receiptQR)
	}

	return output, nil
}

// GetOrder returns a single order with its line items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewPersistenceError(err)
	}

	return order, nil
}

// ListOrders returns every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	return orders, nil
}

func (srv *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	event := &service.InventoryEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventOrderCreated,
		OrderID:   order.ID.String(),
		NetTotal:  order.NetTotal,
	}

	if err := srv.publisher.PublishInventoryEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// alertLowStock publishes a stock.low event and pushes a notification to
// every active admin device. Tokens the provider reports as invalid are
// deactivated so they drop out of future batches.
func (srv *orderService) alertLowStock(ctx context.Context, product *entity.Product) {
	event := &service.InventoryEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        constants.EventStockLow,
		ProductID:   product.ID.String(),
		ProductName: product.ProductName,
		Stock:       product.Stock,
		Threshold:   product.Threshold,
	}

	if err := srv.publisher.PublishInventoryEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish low stock event", slog.Any("productID", product.ID), slog.Any("error", err))
	}

	if srv.notification == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for low stock alert", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	tokenToDevice := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		tokenToDevice[device.FCMToken] = device.ID
	}

	title := "Low stock alert"
	body := fmt.Sprintf("%s is down to %d (threshold %d)", product.ProductName, product.Stock, product.Threshold)
	data := map[string]string{
		"type":       constants.EventStockLow,
		"product_id": product.ID.String(),
	}

	successCount, failureCount, invalidTokens, err := srv.notification.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		srv.log(ctx).Error("Failed to send low stock notifications", slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Low stock alert sent",
		slog.String("productName", product.ProductName),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)

	for _, token := range invalidTokens {
		deviceID, ok := tokenToDevice[token]
		if !ok {
			continue
		}
		if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
			srv.log(ctx).Warn("Failed to deactivate stale device", slog.Any("deviceID", deviceID), slog.Any("error", err))
		}
	}
}
