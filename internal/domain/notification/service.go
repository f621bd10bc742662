package notification

import (
	"context"
)

// Service defines the notification service interface. Queueing is
// fire-and-forget: a failed enqueue must never roll back the business
// transaction that triggered it.
type Service interface {
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	MarkAsRead(ctx context.Context, recipientID string, req MarkAsReadRequest) error

	// Lifecycle
	Stop()
}
