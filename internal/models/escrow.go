package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// EscrowTransaction is the row stored in the escrow_transactions table.
type EscrowTransaction struct {
	EscrowID    string          `db:"escrow_id"`
	ListingID   string          `db:"listing_id"`
	BuyerID     string          `db:"buyer_id"`
	SellerID    string          `db:"seller_id"`
	Amount      decimal.Decimal `db:"amount"`
	Fee         decimal.Decimal `db:"fee"`
	Status      string          `db:"status"`
	ProofRef    sql.NullString  `db:"proof_ref"`
	Notes       sql.NullString  `db:"notes"`
	ResolvedBy  sql.NullString  `db:"resolved_by"`
	CreatedAt   time.Time       `db:"created_at"`
	FulfilledAt *time.Time      `db:"fulfilled_at"`
	ResolvedAt  *time.Time      `db:"resolved_at"`
}
