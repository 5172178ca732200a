package dto

import (
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateListingRequest defines the data needed to post a listing.
type CreateListingRequest struct {
	Title       string          `json:"title" binding:"required,max=200" example:"iPhone 13, 128GB"`
	Description string          `json:"description" binding:"max=2000"`
	Category    string          `json:"category" binding:"max=50" example:"electronics"`
	Price       decimal.Decimal `json:"price" binding:"required,dgt0" swaggertype:"string" example:"300.00"`
	Negotiable  bool            `json:"negotiable"`
}

// RepriceListingRequest changes the asking price.
type RepriceListingRequest struct {
	Price decimal.Decimal `json:"price" binding:"required,dgt0" swaggertype:"string" example:"280.00"`
}

// ModerateListingRequest applies an administrative action.
type ModerateListingRequest struct {
	Action domain.ModerationAction `json:"action" binding:"required,oneof=suspend block reactivate" example:"suspend"`
}

// ListListingsParams defines query parameters for listing listings.
type ListListingsParams struct {
	Status   domain.ListingStatus `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE SUSPENDED SOLD COMPLETED BLOCKED"`
	SellerID string               `form:"sellerID"`
	Category string               `form:"category"`
}

// ListingResponse defines the data returned for a listing.
type ListingResponse struct {
	ListingID     string               `json:"listingID"`
	SellerID      string               `json:"sellerID"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Price         decimal.Decimal      `json:"price"`
	Negotiable    bool                 `json:"negotiable"`
	Status        domain.ListingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ListListingsResponse wraps the list of listings.
type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}

// ToListingResponse converts a domain.Listing to ListingResponse DTO
func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     l.ListingID,
		SellerID:      l.SellerID,
		Title:         l.Title,
		Description:   l.Description,
		Category:      l.Category,
		Price:         l.Price,
		Negotiable:    l.Negotiable,
		Status:        l.Status,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
		LastUpdatedBy: l.LastUpdatedBy,
	}
}

// ToListListingsResponse converts a slice of domain.Listing to ListListingsResponse DTO
func ToListListingsResponse(listings []domain.Listing) ListListingsResponse {
	res := make([]ListingResponse, len(listings))
	for i, l := range listings {
		res[i] = ToListingResponse(&l)
	}
	return ListListingsResponse{Listings: res}
}
