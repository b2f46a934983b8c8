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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its line items. GORM inserts the
// associated items through the Items relation.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves a single order with its line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindAll retrieves every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:     itemM.ProductID,
			ProductName:   itemM.ProductName,
			Quantity:      itemM.Quantity,
			OfferPer:      itemM.OfferPer,
			PurchasePrice: itemM.PurchasePrice,
			RetailPrice:   itemM.RetailPrice,
			Total:         itemM.Total,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		ClientName:    data.ClientName,
		ClientEmail:   data.ClientEmail,
		ClientContact: data.ClientContact,
		ClientAddress: data.ClientAddress,
		OrderDate:     data.OrderDate,
		Products:      items,
		NetTotal:      data.NetTotal,
		Profit:        data.Profit,
		CreatedAt:     data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Products))
	for _, item := range data.Products {
		items = append(items, model.OrderItemModel{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			OfferPer:      item.OfferPer,
			PurchasePrice: item.PurchasePrice,
			RetailPrice:   item.RetailPrice,
			Total:         item.Total,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		ClientName:    data.ClientName,
		ClientEmail:   data.ClientEmail,
		ClientContact: data.ClientContact,
		ClientAddress: data.ClientAddress,
		OrderDate:     data.OrderDate,
		NetTotal:      data.NetTotal,
		Profit:        data.Profit,
		Items:         items,
	}
}
