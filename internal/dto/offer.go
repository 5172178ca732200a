package dto

import (
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitOfferRequest carries a buyer's proposed price.
type SubmitOfferRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0" swaggertype:"string" example:"275.00"`
}

// OfferResponse defines the data returned for an offer.
type OfferResponse struct {
	OfferID    string             `json:"offerID"`
	ListingID  string             `json:"listingID"`
	BuyerID    string             `json:"buyerID"`
	Amount     decimal.Decimal    `json:"amount"`
	Status     domain.OfferStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	ResolvedAt *time.Time         `json:"resolvedAt,omitempty"`
}

// AcceptOfferResponse reports everything an acceptance changed.
type AcceptOfferResponse struct {
	Accepted OfferResponse   `json:"accepted"`
	Rejected []OfferResponse `json:"rejected"`
	Listing  ListingResponse `json:"listing"`
}

// ListOffersResponse wraps the list of offers.
type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// ToOfferResponse converts a domain.Offer to OfferResponse DTO
func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:    o.OfferID,
		ListingID:  o.ListingID,
		BuyerID:    o.BuyerID,
		Amount:     o.Amount,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		ResolvedAt: o.ResolvedAt,
	}
}

// ToOfferResponses converts a slice of domain.Offer to []OfferResponse.
func ToOfferResponses(offers []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i, o := range offers {
		res[i] = ToOfferResponse(&o)
	}
	return res
}
