package domain

import "time"

// NotificationCategory groups notifications the way the dashboards display them.
type NotificationCategory string

const (
	CategoryUser     NotificationCategory = "user"
	CategoryMoney    NotificationCategory = "money"
	CategorySystem   NotificationCategory = "system"
	CategorySecurity NotificationCategory = "security"
)

// Notification is a human-readable message emitted after a successful transition.
// An empty AccountID addresses the platform administrators.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	AccountID      string               `json:"accountID,omitempty"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Category       NotificationCategory `json:"category"`
	CreatedAt      time.Time            `json:"createdAt"`
	IsRead         bool                 `json:"isRead"`
}
