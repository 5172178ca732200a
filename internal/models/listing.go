package models

import (
	"github.com/shopspring/decimal"
)

// Listing is the row stored in the listings table.
type Listing struct {
	ListingID   string          `db:"listing_id"`
	SellerID    string          `db:"seller_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Negotiable  bool            `db:"negotiable"`
	Status      string          `db:"status"`
	AuditFields
}
