package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// Notifier delivers a notification. Delivery is fire-and-forget: an error is
// reported to the caller for logging and never undoes the transition that
// produced the notification.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// NotificationSvc exposes an account's notification inbox.
type NotificationSvc interface {
	ListNotifications(ctx context.Context, accountID string, params dto.ListNotificationsParams) ([]domain.Notification, error)
	MarkRead(ctx context.Context, accountID string, notificationID string) error
}
