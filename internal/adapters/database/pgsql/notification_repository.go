package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/SscSPs/fastpay_escrow/internal/models"
	"github.com/SscSPs/fastpay_escrow/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxNotificationRepository stores delivered notifications for the dashboards.
type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification inserts a notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (notification_id, account_id, title, message, category, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.NotificationID, m.AccountID, m.Title, m.Message, m.Category, m.IsRead, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: notification %s", apperrors.ErrDuplicate, n.NotificationID)
		}
		return fmt.Errorf("failed to insert notification %s: %w", n.NotificationID, err)
	}
	return nil
}

// ListNotifications returns the newest notifications for accountID first.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, accountID string, includeBroadcast bool, limit int, offset int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, account_id, title, message, category, is_read, created_at
		FROM notifications
		WHERE account_id = $1 OR ($2 AND account_id IS NULL)
		ORDER BY created_at DESC, notification_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, includeBroadcast, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.AccountID, &m.Title, &m.Message, &m.Category, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return mapping.ToDomainNotificationSlice(out), nil
}

// MarkNotificationRead flags a notification as read. Broadcast notifications are
// marked on behalf of whichever administrator reads them first.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, accountID string, notificationID string) error {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE notification_id = $1 AND (account_id = $2 OR account_id IS NULL);
	`
	ct, err := r.Pool.Exec(ctx, query, notificationID, accountID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
	}
	return nil
}
