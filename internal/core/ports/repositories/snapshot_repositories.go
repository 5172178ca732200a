package repositories

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
)

// SnapshotReader loads persisted marketplace state.
type SnapshotReader interface {
	// LoadSnapshot returns every persisted collection. An empty store yields an empty snapshot.
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// SnapshotWriter persists marketplace state.
type SnapshotWriter interface {
	// SaveSnapshot upserts every record of the listed collections of snap.
	// Collections not listed are left untouched. Records are never deleted.
	SaveSnapshot(ctx context.Context, snap domain.Snapshot, collections []domain.Collection) error
}

// SnapshotRepositoryFacade combines snapshot read and write access.
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
