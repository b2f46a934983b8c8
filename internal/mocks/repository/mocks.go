// Package repository provides test doubles for the persistence interfaces.
package repository

import (
	"context"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// BrandRepository is a mock implementation of repository.BrandRepository.
type BrandRepository struct {
	mock.Mock
}

func (m *BrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	args := m.Called(ctx, brand)

	return args.Error(0)
}

func (m *BrandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	args := m.Called(ctx)
	if brands := args.Get(0); brands != nil {
		return brands.([]*entity.Brand), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	if brand := args.Get(0); brand != nil {
		return brand.(*entity.Brand), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *BrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	args := m.Called(ctx, brand)

	return args.Error(0)
}

func (m *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, brandID)
	if products := args.Get(0); products != nil {
		return products.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) FindLowStock(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

// OrderRepository is a mock implementation of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

// DeviceRepository is a mock implementation of repository.DeviceRepository.
type DeviceRepository struct {
	mock.Mock
}

func (m *DeviceRepository) CreateDevice(ctx context.Context, device *entity.AdminDevice) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *DeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AdminDevice, error) {
	args := m.Called(ctx, id)
	if device := args.Get(0); device != nil {
		return device.(*entity.AdminDevice), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DeviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdminDevice, error) {
	args := m.Called(ctx, userID)
	if devices := args.Get(0); devices != nil {
		return devices.([]*entity.AdminDevice), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DeviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.AdminDevice, error) {
	args := m.Called(ctx)
	if devices := args.Get(0); devices != nil {
		return devices.([]*entity.AdminDevice), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DeviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	args := m.Called(ctx, deviceID, fcmToken)

	return args.Error(0)
}

func (m *DeviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
// Configure it by assigning the repositories the factory should hand out.
type RepositoryFactory struct {
	Users    repository.UserRepository
	Brands   repository.BrandRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Devices  repository.DeviceRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository       { return f.Users }
func (f *RepositoryFactory) BrandRepo() repository.BrandRepository     { return f.Brands }
func (f *RepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }
func (f *RepositoryFactory) OrderRepo() repository.OrderRepository     { return f.Orders }
func (f *RepositoryFactory) DeviceRepo() repository.DeviceRepository   { return f.Devices }

// TransactionManager is a pass-through implementation of
// repository.TransactionManager that runs the callback against the given
// factory without any real transaction.
type TransactionManager struct {
	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
