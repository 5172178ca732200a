// Package memory holds process-local repository implementations used when no
// database is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
)

// SnapshotStore keeps the last saved copy of every collection.
type SnapshotStore struct {
	mu    sync.RWMutex
	snap  domain.Snapshot
	saves int
}

// NewSnapshotStore creates an empty SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotStore)(nil)

// SaveSnapshot replaces the listed collections with copies from snap.
func (s *SnapshotStore) SaveSnapshot(_ context.Context, snap domain.Snapshot, collections []domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range collections {
		switch c {
		case domain.CollectionAccounts:
			s.snap.Accounts = append([]domain.Account(nil), snap.Accounts...)
		case domain.CollectionListings:
			s.snap.Listings = append([]domain.Listing(nil), snap.Listings...)
		case domain.CollectionOffers:
			s.snap.Offers = append([]domain.Offer(nil), snap.Offers...)
		case domain.CollectionEscrows:
			s.snap.Escrows = append([]domain.EscrowTransaction(nil), snap.Escrows...)
		}
	}
	s.snap.TakenAt = snap.TakenAt
	s.saves++
	return nil
}

// LoadSnapshot returns a copy of what was last saved.
func (s *SnapshotStore) LoadSnapshot(_ context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &domain.Snapshot{
		Accounts: append([]domain.Account(nil), s.snap.Accounts...),
		Listings: append([]domain.Listing(nil), s.snap.Listings...),
		Offers:   append([]domain.Offer(nil), s.snap.Offers...),
		Escrows:  append([]domain.EscrowTransaction(nil), s.snap.Escrows...),
		TakenAt:  s.snap.TakenAt,
	}, nil
}

// Saves reports how many times SaveSnapshot has been called.
func (s *SnapshotStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
