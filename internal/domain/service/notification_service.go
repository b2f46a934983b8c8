package service

import "context"

// NotificationService defines the interface for sending push notifications
// to registered admin devices.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens.
	// Returns success/failure counts and the tokens the provider reported as
	// invalid or unregistered, so callers can deactivate them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
