package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus is the status of a negotiation offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "PENDING"
	OfferAccepted OfferStatus = "ACCEPTED"
	OfferRejected OfferStatus = "REJECTED"
)

// Offer is a buyer's proposed price against a negotiable listing.
type Offer struct {
	OfferID    string          `json:"offerID"`
	ListingID  string          `json:"listingID"`
	BuyerID    string          `json:"buyerID"`
	Amount     decimal.Decimal `json:"amount"`
	Status     OfferStatus     `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
}

// IsPending reports whether the offer is still awaiting the seller.
func (o Offer) IsPending() bool {
	return o.Status == OfferPending
}
