package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the row stored in the offers table.
type Offer struct {
	OfferID    string          `db:"offer_id"`
	ListingID  string          `db:"listing_id"`
	BuyerID    string          `db:"buyer_id"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	ResolvedAt *time.Time      `db:"resolved_at"` // Nullable
}
