package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// NegotiationSvcFacade manages buyer offers on negotiable listings.
type NegotiationSvcFacade interface {
	SubmitOffer(ctx context.Context, listingID string, req dto.SubmitOfferRequest, buyerID string) (*domain.Offer, error)

	// AcceptOffer accepts one offer, rejects the other pending ones and reprices the listing.
	AcceptOffer(ctx context.Context, offerID string, sellerID string) (*dto.AcceptOfferResponse, error)

	RejectOffer(ctx context.Context, offerID string, sellerID string) (*domain.Offer, error)
	ListOffers(ctx context.Context, listingID string) ([]domain.Offer, error)
}
