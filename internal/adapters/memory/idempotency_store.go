package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
)

type idempotencyEntry struct {
	record    portsrepo.IdempotencyRecord
	expiresAt time.Time
}

// IdempotencyStore keeps idempotency records until their TTL passes.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	now     func() time.Time
}

// NewIdempotencyStore creates an empty IdempotencyStore.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{entries: make(map[string]idempotencyEntry), now: time.Now}
}

var _ portsrepo.IdempotencyRepository = (*IdempotencyStore)(nil)

// lookup returns the live entry for key, evicting it if expired. Caller holds mu.
func (s *IdempotencyStore) lookup(key string) (idempotencyEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return idempotencyEntry{}, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return idempotencyEntry{}, false
	}
	return e, true
}

func (s *IdempotencyStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// Get returns the record for key or nil.
func (s *IdempotencyStore) Get(_ context.Context, key string) (*portsrepo.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok {
		return nil, nil
	}
	rec := e.record
	return &rec, nil
}

// Reserve claims key unless it is already held.
func (s *IdempotencyStore) Reserve(_ context.Context, key, requestHash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lookup(key); ok {
		return fmt.Errorf("%w: key %s", apperrors.ErrIdempotencyConflict, key)
	}
	s.entries[key] = idempotencyEntry{
		record:    portsrepo.IdempotencyRecord{Key: key, RequestHash: requestHash},
		expiresAt: s.expiry(ttl),
	}
	return nil
}

// Complete records the response for a reserved key.
func (s *IdempotencyStore) Complete(_ context.Context, key string, responseCode int, responseBody []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok {
		return fmt.Errorf("%w: idempotency key %s", apperrors.ErrNotFound, key)
	}
	e.record.ResponseCode = responseCode
	e.record.ResponseBody = append([]byte(nil), responseBody...)
	e.expiresAt = s.expiry(ttl)
	s.entries[key] = e
	return nil
}

// Release forgets key.
func (s *IdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
