package dto

import "github.com/SscSPs/fastpay_escrow/internal/core/domain"

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListNotificationsResponse wraps the list of notifications.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}
