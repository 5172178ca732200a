package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotRepository is a mock type for the SnapshotRepositoryFacade interface
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.Snapshot, collections []domain.Collection) error {
	args := m.Called(ctx, snap, collections)
	return args.Error(0)
}

// MockNotifier is a mock type for the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// recordingNotifier keeps every delivered notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) titlesFor(accountID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.sent {
		if n.AccountID == accountID {
			out = append(out, n.Title)
		}
	}
	return out
}

type staticSource struct {
	snap domain.Snapshot
}

func (s staticSource) Snapshot() domain.Snapshot { return s.snap }

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
