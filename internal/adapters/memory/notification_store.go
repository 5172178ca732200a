package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
)

// NotificationStore keeps notifications in insertion order.
type NotificationStore struct {
	mu    sync.RWMutex
	items []domain.Notification
}

// NewNotificationStore creates an empty NotificationStore.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

var _ portsrepo.NotificationRepositoryFacade = (*NotificationStore)(nil)

// SaveNotification appends n.
func (s *NotificationStore) SaveNotification(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.NotificationID == n.NotificationID {
			return fmt.Errorf("%w: notification %s", apperrors.ErrDuplicate, n.NotificationID)
		}
	}
	s.items = append(s.items, n)
	return nil
}

// ListNotifications returns the newest matching notifications first.
func (s *NotificationStore) ListNotifications(_ context.Context, accountID string, includeBroadcast bool, limit int, offset int) ([]domain.Notification, error) {
	s.mu.RLock()
	var matched []domain.Notification
	for _, n := range s.items {
		if n.AccountID == accountID || (includeBroadcast && n.AccountID == "") {
			matched = append(matched, n)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].NotificationID > matched[j].NotificationID
	})

	if offset >= len(matched) {
		return []domain.Notification{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

// MarkNotificationRead flags the notification as read.
func (s *NotificationStore) MarkNotificationRead(_ context.Context, accountID string, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		n := &s.items[i]
		if n.NotificationID == notificationID && (n.AccountID == accountID || n.AccountID == "") {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
}
