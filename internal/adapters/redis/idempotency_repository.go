package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "fastpay:idempotency:"

// IdempotencyRepository keeps idempotency records as JSON strings with a TTL.
type IdempotencyRepository struct {
	client *goredis.Client
}

// NewIdempotencyRepository creates the Redis idempotency adapter.
func NewIdempotencyRepository(client *goredis.Client) *IdempotencyRepository {
	return &IdempotencyRepository{client: client}
}

var _ portsrepo.IdempotencyRepository = (*IdempotencyRepository)(nil)

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*portsrepo.IdempotencyRecord, error) {
	raw, err := r.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency record: %w", err)
	}
	var rec portsrepo.IdempotencyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &rec, nil
}

// Reserve uses SET NX so only one request can claim a key.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key, requestHash string, ttl time.Duration) error {
	raw, err := json.Marshal(portsrepo.IdempotencyRecord{Key: key, RequestHash: requestHash})
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, idempotencyKeyPrefix+key, raw, ttl).Result()
	if err != nil {
		return fmt.Errorf("reserve idempotency key: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: key %s", apperrors.ErrIdempotencyConflict, key)
	}
	return nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key string, responseCode int, responseBody []byte, ttl time.Duration) error {
	rec, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: idempotency key %s", apperrors.ErrNotFound, key)
	}
	rec.ResponseCode = responseCode
	rec.ResponseBody = responseBody
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, idempotencyKeyPrefix+key, raw, ttl).Err()
}

func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}
