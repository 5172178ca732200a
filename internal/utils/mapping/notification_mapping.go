package mapping

import (
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		AccountID:      nullString(d.AccountID),
		Title:          d.Title,
		Message:        d.Message,
		Category:       string(d.Category),
		IsRead:         d.IsRead,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		AccountID:      m.AccountID.String,
		Title:          m.Title,
		Message:        m.Message,
		Category:       domain.NotificationCategory(m.Category),
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
