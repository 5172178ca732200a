package models

import (
	"database/sql"
	"time"
)

// Notification is the row stored in the notifications table.
// A NULL account_id addresses the platform administrators.
type Notification struct {
	NotificationID string         `db:"notification_id"`
	AccountID      sql.NullString `db:"account_id"`
	Title          string         `db:"title"`
	Message        string         `db:"message"`
	Category       string         `db:"category"`
	IsRead         bool           `db:"is_read"`
	CreatedAt      time.Time      `db:"created_at"`
}
