package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// ListingReaderSvc defines read operations for listings
type ListingReaderSvc interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListListings(ctx context.Context, params dto.ListListingsParams) ([]domain.Listing, error)
}

// ListingWriterSvc defines write operations for listings
type ListingWriterSvc interface {
	// CreateListing posts a new ACTIVE listing owned by sellerID.
	CreateListing(ctx context.Context, req dto.CreateListingRequest, sellerID string) (*domain.Listing, error)

	// RepriceListing changes the price of a listing the seller owns.
	RepriceListing(ctx context.Context, listingID string, req dto.RepriceListingRequest, sellerID string) (*domain.Listing, error)

	// ModerateListing suspends, blocks or reactivates a listing. Administrators only.
	ModerateListing(ctx context.Context, listingID string, req dto.ModerateListingRequest, actorID string) (*domain.Listing, error)

	// MarkSold moves an ACTIVE listing to SOLD.
	MarkSold(ctx context.Context, listingID string) (*domain.Listing, error)

	// MarkCompleted moves a SOLD listing to COMPLETED.
	MarkCompleted(ctx context.Context, listingID string) (*domain.Listing, error)
}

// ListingSvcFacade combines all listing-related service interfaces
type ListingSvcFacade interface {
	ListingReaderSvc
	ListingWriterSvc
}
