package repositories

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// ListNotifications returns the newest notifications addressed to accountID.
	// Passing includeBroadcast also returns notifications addressed to administrators.
	ListNotifications(ctx context.Context, accountID string, includeBroadcast bool, limit int, offset int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// MarkNotificationRead flags a notification owned by accountID as read.
	MarkNotificationRead(ctx context.Context, accountID string, notificationID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
