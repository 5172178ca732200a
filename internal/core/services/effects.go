package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
)

// SnapshotSource produces a consistent copy of the marketplace state.
type SnapshotSource interface {
	Snapshot() domain.Snapshot
}

// EffectRunner performs the side effects returned by a successful transition.
// Failures are logged and never reach the caller: the transition already happened.
type EffectRunner struct {
	BaseService
	source   SnapshotSource
	store    portsrepo.SnapshotWriter
	notifier portssvc.Notifier

	// persistMu orders saves so a later snapshot is never overwritten by an earlier one.
	persistMu sync.Mutex
}

// NewEffectRunner creates an EffectRunner. store and notifier may be nil.
func NewEffectRunner(source SnapshotSource, store portsrepo.SnapshotWriter, notifier portssvc.Notifier) *EffectRunner {
	return &EffectRunner{source: source, store: store, notifier: notifier}
}

// Run persists every collection named by a persist effect in one save, then
// delivers the notifications in order.
func (r *EffectRunner) Run(ctx context.Context, effects []domain.Effect) {
	if len(effects) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	var collections []domain.Collection
	seen := make(map[domain.Collection]bool)
	for _, e := range effects {
		if e.Kind != domain.EffectPersist {
			continue
		}
		for _, c := range e.Collections {
			if !seen[c] {
				seen[c] = true
				collections = append(collections, c)
			}
		}
	}
	if len(collections) > 0 {
		r.persist(ctx, collections)
	}

	for _, e := range effects {
		if e.Kind != domain.EffectNotify || e.Notification == nil || r.notifier == nil {
			continue
		}
		if err := r.notifier.Notify(ctx, *e.Notification); err != nil {
			r.LogError(ctx, err, "Failed to deliver notification",
				slog.String("notification_id", e.Notification.NotificationID),
				slog.String("title", e.Notification.Title))
		}
	}
}

func (r *EffectRunner) persist(ctx context.Context, collections []domain.Collection) {
	if r.store == nil {
		return
	}
	r.persistMu.Lock()
	defer r.persistMu.Unlock()

	snap := r.source.Snapshot()
	if err := r.store.SaveSnapshot(ctx, snap, collections); err != nil {
		names := make([]string, len(collections))
		for i, c := range collections {
			names[i] = string(c)
		}
		r.LogError(ctx, err, "Failed to persist marketplace state", slog.Any("collections", names))
		return
	}
	r.LogDebug(ctx, "Persisted marketplace state", slog.Int("collections", len(collections)))
}

// PersistAll writes every collection, used after bootstrap.
func (r *EffectRunner) PersistAll(ctx context.Context) {
	r.persist(ctx, domain.AllCollections)
}
