package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"stockroom/internal/domain/constants"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	productRepo *mockRepo.ProductRepository
	orderRepo   *mockRepo.OrderRepository
	deviceRepo  *mockRepo.DeviceRepository
	publisher   *mockSvc.EventPublisher
	notifier    *mockSvc.NotificationService
	qrService   *mockSvc.QRCodeService
}

func newTestOrderService(m *orderServiceMocks) usecase.OrderUsecase {
	txManager := &mockRepo.TransactionManager{
		Factory: &mockRepo.RepositoryFactory{
			Products: m.productRepo,
			Orders:   m.orderRepo,
			Devices:  m.deviceRepo,
		},
	}

	return NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		OrderRepo:    m.orderRepo,
		DeviceRepo:   m.deviceRepo,
		Publisher:    m.publisher,
		Notification: m.notifier,
		QRService:    m.qrService,
		Logger:       testLogger(),
	})
}

func defaultOrderMocks() *orderServiceMocks {
	return &orderServiceMocks{
		productRepo: &mockRepo.ProductRepository{},
		orderRepo:   &mockRepo.OrderRepository{},
		deviceRepo:  &mockRepo.DeviceRepository{},
		publisher:   &mockSvc.EventPublisher{},
		notifier:    &mockSvc.NotificationService{},
		qrService:   &mockSvc.QRCodeService{},
	}
}

func TestOrderService_CreateOrder_ComputesTotals(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{
		ID:            productID,
		ProductName:   "Widget",
		PurchasePrice: 60,
		RetailPrice:   100,
		OfferPer:      10, // sale price 90
		Stock:         50,
		Threshold:     5,
	}

	m.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	m.productRepo.On("DecrementStock", ctx, productID, 3).Return(nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.publisher.On("PublishInventoryEvent", ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
		return event.Type == constants.EventOrderCreated
	})).Return(nil)
	m.qrService.On("GenerateReceiptQR", mock.AnythingOfType("uuid.UUID")).Return([]byte("png-bytes"), nil)

	output, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		ClientName:    "Grace",
		ClientEmail:   "grace@example.com",
		ClientContact: "0223456789",
		ClientAddress: "1 Harbor Rd",
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 3}},
	})
	require.NoError(t, err)

	order := output.Order
	require.Len(t, order.Products, 1)
	assert.InDelta(t, 270.0, order.NetTotal, 1e-9)       // 90 * 3
	assert.InDelta(t, 90.0, order.Profit, 1e-9)          // (90 - 60) * 3
	assert.InDelta(t, 270.0, order.Products[0].Total, 1e-9)
	assert.Equal(t, "Widget", order.Products[0].ProductName)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), output.ReceiptQR)
	assert.False(t, order.OrderDate.IsZero())
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, ProductName: "Widget", Stock: 1, Threshold: 0, RetailPrice: 100}

	m.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	m.productRepo.On("DecrementStock", ctx, productID, 5).Return(repository.ErrInsufficientStock)

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		ClientName:    "Grace",
		ClientEmail:   "grace@example.com",
		ClientContact: "0223456789",
		ClientAddress: "1 Harbor Rd",
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 5}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	m.orderRepo.AssertNotCalled(t, "Create")
	m.publisher.AssertNotCalled(t, "PublishInventoryEvent")
}

func TestOrderService_CreateOrder_EmptyOrder(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	_, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
		ClientName: "Grace",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_ThresholdCrossingAlerts(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	productID := uuid.New()
	// Stock 10 with threshold 8: selling 3 crosses the line.
	product := &entity.Product{
		ID:            productID,
		ProductName:   "Widget",
		PurchasePrice: 60,
		RetailPrice:   100,
		Stock:         10,
		Threshold:     8,
	}
	deviceID := uuid.New()
	devices := []*entity.AdminDevice{
		{ID: deviceID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), FCMToken: "token-2", IsActive: true},
	}

	m.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	m.productRepo.On("DecrementStock", ctx, productID, 3).Return(nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.publisher.On("PublishInventoryEvent", ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
		return event.Type == constants.EventOrderCreated
	})).Return(nil)
	m.publisher.On("PublishInventoryEvent", ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
		return event.Type == constants.EventStockLow && event.Stock == 7 && event.Threshold == 8
	})).Return(nil)
	m.deviceRepo.On("FindActiveDevices", ctx).Return(devices, nil)
	m.notifier.On("SendBatchNotification", ctx, []string{"token-1", "token-2"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"token-1"}, nil)
	m.deviceRepo.On("DeactivateDevice", ctx, deviceID).Return(nil)
	m.qrService.On("GenerateReceiptQR", mock.AnythingOfType("uuid.UUID")).Return([]byte("png"), nil)

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		ClientName:    "Grace",
		ClientEmail:   "grace@example.com",
		ClientContact: "0223456789",
		ClientAddress: "1 Harbor Rd",
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 3}},
	})
	require.NoError(t, err)

	m.publisher.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
	m.deviceRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_NoAlertWhenAlreadyLow(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	productID := uuid.New()
	// Already at or under the threshold before the sale; no new alert.
	product := &entity.Product{
		ID:          productID,
		ProductName: "Widget",
		RetailPrice: 100,
		Stock:       5,
		Threshold:   8,
	}

	m.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	m.productRepo.On("DecrementStock", ctx, productID, 1).Return(nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.publisher.On("PublishInventoryEvent", ctx, mock.MatchedBy(func(event *service.InventoryEvent) bool {
		return event.Type == constants.EventOrderCreated
	})).Return(nil)
	m.qrService.On("GenerateReceiptQR", mock.AnythingOfType("uuid.UUID")).Return([]byte("png"), nil)

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		ClientName:    "Grace",
		ClientEmail:   "grace@example.com",
		ClientContact: "0223456789",
		ClientAddress: "1 Harbor Rd",
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	m.deviceRepo.AssertNotCalled(t, "FindActiveDevices")
	m.notifier.AssertNotCalled(t, "SendBatchNotification")
}

func TestOrderService_CreateOrder_QRFailureDoesNotFailOrder(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, ProductName: "Widget", RetailPrice: 100, Stock: 50, Threshold: 5}

	m.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	m.productRepo.On("DecrementStock", ctx, productID, 1).Return(nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.publisher.On("PublishInventoryEvent", ctx, mock.Anything).Return(nil)
	m.qrService.On("GenerateReceiptQR", mock.AnythingOfType("uuid.UUID")).Return(nil, assert.AnError)

	output, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		ClientName:    "Grace",
		ClientEmail:   "grace@example.com",
		ClientContact: "0223456789",
		ClientAddress: "1 Harbor Rd",
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, output.ReceiptQR)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	id := uuid.New()
	m.orderRepo.On("FindByID", ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := svc.GetOrder(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	m := defaultOrderMocks()
	svc := newTestOrderService(m)

	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	m.orderRepo.On("FindAll", ctx).Return(orders, nil)

	got, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
