// Package notify holds the delivery channels for marketplace notifications.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
)

// LogNotifier writes every notification to the request logger.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, n domain.Notification) error {
	recipient := n.AccountID
	if recipient == "" {
		recipient = "admins"
	}
	middleware.GetLoggerFromCtx(ctx).Info("Notification",
		slog.String("notification_id", n.NotificationID),
		slog.String("recipient", recipient),
		slog.String("category", string(n.Category)),
		slog.String("title", n.Title),
		slog.String("message", n.Message))
	return nil
}

// RepositoryNotifier stores notifications so dashboards can list them.
type RepositoryNotifier struct {
	repo portsrepo.NotificationWriter
}

// NewRepositoryNotifier creates a RepositoryNotifier.
func NewRepositoryNotifier(repo portsrepo.NotificationWriter) *RepositoryNotifier {
	return &RepositoryNotifier{repo: repo}
}

func (r *RepositoryNotifier) Notify(ctx context.Context, n domain.Notification) error {
	return r.repo.SaveNotification(ctx, n)
}

// EventEnqueuer is the subset of the PostHog client the analytics notifier needs.
type EventEnqueuer interface {
	Enqueue(distinctID string, event string, properties map[string]any) error
}

// PosthogNotifier forwards notifications as analytics events.
type PosthogNotifier struct {
	client EventEnqueuer
}

// NewPosthogNotifier creates a PosthogNotifier.
func NewPosthogNotifier(client EventEnqueuer) *PosthogNotifier {
	return &PosthogNotifier{client: client}
}

const (
	posthogEvent       = "marketplace_notification"
	posthogAdminTarget = "platform-admins"
)

func (p *PosthogNotifier) Notify(_ context.Context, n domain.Notification) error {
	distinctID := n.AccountID
	if distinctID == "" {
		distinctID = posthogAdminTarget
	}
	return p.client.Enqueue(distinctID, posthogEvent, map[string]any{
		"notification_id": n.NotificationID,
		"category":        string(n.Category),
		"title":           n.Title,
	})
}

// FanOut delivers to every channel and joins their errors.
type FanOut struct {
	notifiers []portssvc.Notifier
}

// NewFanOut creates a FanOut over notifiers. Nil entries are skipped.
func NewFanOut(notifiers ...portssvc.Notifier) *FanOut {
	f := &FanOut{}
	for _, n := range notifiers {
		if n != nil {
			f.notifiers = append(f.notifiers, n)
		}
	}
	return f
}

func (f *FanOut) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, notifier := range f.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ portssvc.Notifier = LogNotifier{}
	_ portssvc.Notifier = (*RepositoryNotifier)(nil)
	_ portssvc.Notifier = (*PosthogNotifier)(nil)
	_ portssvc.Notifier = (*FanOut)(nil)
)
