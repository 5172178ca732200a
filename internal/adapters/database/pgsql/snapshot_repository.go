package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/SscSPs/fastpay_escrow/internal/models"
	"github.com/SscSPs/fastpay_escrow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	upsertAccountSQL = `
		INSERT INTO accounts (account_id, username, display_name, role, status, balance, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (account_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			status = EXCLUDED.status,
			balance = EXCLUDED.balance,
			password_hash = EXCLUDED.password_hash,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	upsertListingSQL = `
		INSERT INTO listings (listing_id, seller_id, title, description, category, price, negotiable, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (listing_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			negotiable = EXCLUDED.negotiable,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	upsertOfferSQL = `
		INSERT INTO offers (offer_id, listing_id, buyer_id, amount, status, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (offer_id) DO UPDATE SET
			status = EXCLUDED.status,
			resolved_at = EXCLUDED.resolved_at;
	`
	upsertEscrowSQL = `
		INSERT INTO escrow_transactions (escrow_id, listing_id, buyer_id, seller_id, amount, fee, status, proof_ref, notes, resolved_by, created_at, fulfilled_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (escrow_id) DO UPDATE SET
			status = EXCLUDED.status,
			proof_ref = EXCLUDED.proof_ref,
			notes = EXCLUDED.notes,
			resolved_by = EXCLUDED.resolved_by,
			fulfilled_at = EXCLUDED.fulfilled_at,
			resolved_at = EXCLUDED.resolved_at;
	`
)

// PgxSnapshotRepository stores marketplace collections in PostgreSQL.
type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepositoryFacade {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)
	_ portsrepo.RepositoryWithTx         = (*PgxSnapshotRepository)(nil)
)

// SaveSnapshot upserts the listed collections inside one database transaction.
// Collections are written in foreign key order regardless of the order given.
func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.Snapshot, collections []domain.Collection) error {
	want := make(map[domain.Collection]bool, len(collections))
	for _, c := range collections {
		want[c] = true
	}
	if len(want) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "Failed to rollback snapshot transaction", "error", rbErr)
		}
	}()

	for _, c := range domain.AllCollections {
		if !want[c] {
			continue
		}
		if err := r.saveCollection(ctx, tx, snap, c); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSnapshotRepository) saveCollection(ctx context.Context, tx pgx.Tx, snap domain.Snapshot, c domain.Collection) error {
	batch := &pgx.Batch{}
	var ids []string

	switch c {
	case domain.CollectionAccounts:
		for _, a := range snap.Accounts {
			m := mapping.ToModelAccount(a)
			batch.Queue(upsertAccountSQL, m.AccountID, m.Username, m.DisplayName, m.Role, m.Status, m.Balance, m.PasswordHash,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
			ids = append(ids, m.AccountID)
		}
	case domain.CollectionListings:
		for _, l := range snap.Listings {
			m := mapping.ToModelListing(l)
			batch.Queue(upsertListingSQL, m.ListingID, m.SellerID, m.Title, m.Description, m.Category, m.Price, m.Negotiable, m.Status,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
			ids = append(ids, m.ListingID)
		}
	case domain.CollectionOffers:
		for _, o := range snap.Offers {
			m := mapping.ToModelOffer(o)
			batch.Queue(upsertOfferSQL, m.OfferID, m.ListingID, m.BuyerID, m.Amount, m.Status, m.CreatedAt, m.ResolvedAt)
			ids = append(ids, m.OfferID)
		}
	case domain.CollectionEscrows:
		for _, e := range snap.Escrows {
			m := mapping.ToModelEscrow(e)
			batch.Queue(upsertEscrowSQL, m.EscrowID, m.ListingID, m.BuyerID, m.SellerID, m.Amount, m.Fee, m.Status,
				m.ProofRef, m.Notes, m.ResolvedBy, m.CreatedAt, m.FulfilledAt, m.ResolvedAt)
			ids = append(ids, m.EscrowID)
		}
	default:
		return fmt.Errorf("unknown collection %q", c)
	}

	return execBatch(ctx, tx, batch, string(c), ids)
}

// LoadSnapshot reads every collection.
func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{TakenAt: time.Now().UTC()}
	var err error

	if snap.Accounts, err = r.loadAccounts(ctx); err != nil {
		return nil, err
	}
	if snap.Listings, err = r.loadListings(ctx); err != nil {
		return nil, err
	}
	if snap.Offers, err = r.loadOffers(ctx); err != nil {
		return nil, err
	}
	if snap.Escrows, err = r.loadEscrows(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *PgxSnapshotRepository) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, username, display_name, role, status, balance, password_hash, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		ORDER BY account_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Username, &m.DisplayName, &m.Role, &m.Status, &m.Balance, &m.PasswordHash,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxSnapshotRepository) loadListings(ctx context.Context) ([]domain.Listing, error) {
	query := `
		SELECT listing_id, seller_id, title, description, category, price, negotiable, status, created_at, created_by, last_updated_at, last_updated_by
		FROM listings
		ORDER BY listing_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var m models.Listing
		if err := rows.Scan(&m.ListingID, &m.SellerID, &m.Title, &m.Description, &m.Category, &m.Price, &m.Negotiable, &m.Status,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, mapping.ToDomainListing(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}
	return listings, nil
}

func (r *PgxSnapshotRepository) loadOffers(ctx context.Context) ([]domain.Offer, error) {
	query := `
		SELECT offer_id, listing_id, buyer_id, amount, status, created_at, resolved_at
		FROM offers
		ORDER BY offer_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var m models.Offer
		if err := rows.Scan(&m.OfferID, &m.ListingID, &m.BuyerID, &m.Amount, &m.Status, &m.CreatedAt, &m.ResolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, mapping.ToDomainOffer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offer rows: %w", err)
	}
	return offers, nil
}

func (r *PgxSnapshotRepository) loadEscrows(ctx context.Context) ([]domain.EscrowTransaction, error) {
	query := `
		SELECT escrow_id, listing_id, buyer_id, seller_id, amount, fee, status, proof_ref, notes, resolved_by, created_at, fulfilled_at, resolved_at
		FROM escrow_transactions
		ORDER BY escrow_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query escrow transactions: %w", err)
	}
	defer rows.Close()

	var escrows []domain.EscrowTransaction
	for rows.Next() {
		var m models.EscrowTransaction
		if err := rows.Scan(&m.EscrowID, &m.ListingID, &m.BuyerID, &m.SellerID, &m.Amount, &m.Fee, &m.Status,
			&m.ProofRef, &m.Notes, &m.ResolvedBy, &m.CreatedAt, &m.FulfilledAt, &m.ResolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan escrow row: %w", err)
		}
		escrows = append(escrows, mapping.ToDomainEscrow(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating escrow rows: %w", err)
	}
	return escrows, nil
}
