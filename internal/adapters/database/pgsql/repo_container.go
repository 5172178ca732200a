package pgsql

import (
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the PostgreSQL-backed repositories. Idempotency records
// are not kept in PostgreSQL; the caller supplies that repository separately.
func NewRepositoryProvider(dbPool *pgxpool.Pool, idempotencyRepo portsrepo.IdempotencyRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotRepo:     newPgxSnapshotRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		IdempotencyRepo:  idempotencyRepo,
	}
}
