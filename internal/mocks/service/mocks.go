// Package service provides test doubles for the domain service interfaces.
package service

import (
	"context"
	"io"

	"stockroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(claims *service.Claims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Verify(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

// AssetStorage is a mock implementation of service.AssetStorage.
type AssetStorage struct {
	mock.Mock
}

func (m *AssetStorage) Store(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, name, contentType, content)

	return args.String(0), args.Error(1)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishInventoryEvent(ctx context.Context, event *service.InventoryEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// NotificationService is a mock implementation of service.NotificationService.
type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)

	return args.Error(0)
}

func (m *NotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)

	var invalid []string
	if tokens := args.Get(2); tokens != nil {
		invalid = tokens.([]string)
	}

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GenerateReceiptQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	if png := args.Get(0); png != nil {
		return png.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *QRCodeService) ParseReceiptQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}
