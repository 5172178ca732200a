package repositories

import (
	"context"
	"time"
)

// IdempotencyRecord is what is remembered about a request carrying an Idempotency-Key.
// A record with a zero ResponseCode is reserved but not yet completed.
type IdempotencyRecord struct {
	Key          string `json:"key"`
	RequestHash  string `json:"requestHash"`
	ResponseCode int    `json:"responseCode"`
	ResponseBody []byte `json:"responseBody,omitempty"`
}

// IdempotencyRepository stores idempotency records with a time to live.
type IdempotencyRepository interface {
	// Get returns the record for key, or nil when none exists.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)

	// Reserve claims key for a request. It fails with apperrors.ErrIdempotencyConflict
	// when the key is already held.
	Reserve(ctx context.Context, key, requestHash string, ttl time.Duration) error

	// Complete stores the response produced for a reserved key.
	Complete(ctx context.Context, key string, responseCode int, responseBody []byte, ttl time.Duration) error

	// Release drops a reservation so the request may be retried.
	Release(ctx context.Context, key string) error
}
