package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

type notificationService struct {
	BaseService
	repo   portsrepo.NotificationRepositoryFacade
	market *market.Marketplace
}

// NewNotificationService creates the notification inbox service.
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade, m *market.Marketplace) portssvc.NotificationSvc {
	return &notificationService{repo: repo, market: m}
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

// ListNotifications includes the administrator broadcasts when accountID is an administrator.
func (s *notificationService) ListNotifications(ctx context.Context, accountID string, params dto.ListNotificationsParams) ([]domain.Notification, error) {
	acc, err := s.market.Account(accountID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListNotifications(ctx, accountID, acc.Role == domain.RoleAdmin, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("account_id", accountID))
		return nil, err
	}
	if items == nil {
		return []domain.Notification{}, nil
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, accountID string, notificationID string) error {
	if err := s.repo.MarkNotificationRead(ctx, accountID, notificationID); err != nil {
		s.LogRejected(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return err
	}
	return nil
}
