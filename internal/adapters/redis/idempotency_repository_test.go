package redis

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*IdempotencyRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyRepository(client), mr
}

func TestIdempotencyRepository_Lifecycle(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	rec, err := repo.Get(ctx, "acc:k1")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, repo.Reserve(ctx, "acc:k1", "hash-1", time.Minute))

	err = repo.Reserve(ctx, "acc:k1", "hash-1", time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrIdempotencyConflict)

	rec, err = repo.Get(ctx, "acc:k1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "hash-1", rec.RequestHash)
	assert.Zero(t, rec.ResponseCode)

	require.NoError(t, repo.Complete(ctx, "acc:k1", 201, []byte(`{"ok":true}`), time.Minute))
	rec, err = repo.Get(ctx, "acc:k1")
	require.NoError(t, err)
	assert.Equal(t, 201, rec.ResponseCode)
	assert.JSONEq(t, `{"ok":true}`, string(rec.ResponseBody))

	require.NoError(t, repo.Release(ctx, "acc:k1"))
	rec, err = repo.Get(ctx, "acc:k1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestIdempotencyRepository_Expires(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, "acc:k2", "h", time.Second))
	mr.FastForward(2 * time.Second)

	rec, err := repo.Get(ctx, "acc:k2")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, repo.Reserve(ctx, "acc:k2", "h", time.Second))
}

func TestIdempotencyRepository_CompleteWithoutReserve(t *testing.T) {
	repo, _ := newTestRepository(t)
	err := repo.Complete(context.Background(), "missing", 200, nil, time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
