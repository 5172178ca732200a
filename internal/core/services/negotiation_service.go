package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

type negotiationService struct {
	BaseService
	market  *market.Marketplace
	effects *EffectRunner
}

// NewNegotiationService creates a new negotiation service.
func NewNegotiationService(m *market.Marketplace, effects *EffectRunner) portssvc.NegotiationSvcFacade {
	return &negotiationService{market: m, effects: effects}
}

var _ portssvc.NegotiationSvcFacade = (*negotiationService)(nil)

func (s *negotiationService) SubmitOffer(ctx context.Context, listingID string, req dto.SubmitOfferRequest, buyerID string) (*domain.Offer, error) {
	o, effects, err := s.market.SubmitOffer(listingID, buyerID, req.Amount)
	if err != nil {
		s.LogRejected(ctx, err, "Offer rejected at submission",
			slog.String("listing_id", listingID),
			slog.String("buyer_id", buyerID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Offer submitted", slog.String("offer_id", o.OfferID), slog.String("amount", o.Amount.String()))
	return &o, nil
}

func (s *negotiationService) AcceptOffer(ctx context.Context, offerID string, sellerID string) (*dto.AcceptOfferResponse, error) {
	res, effects, err := s.market.AcceptOffer(sellerID, offerID)
	if err != nil {
		s.LogRejected(ctx, err, "Offer acceptance rejected", slog.String("offer_id", offerID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Offer accepted",
		slog.String("offer_id", offerID),
		slog.String("listing_id", res.Listing.ListingID),
		slog.Int("rejected_offers", len(res.Rejected)))

	return &dto.AcceptOfferResponse{
		Accepted: dto.ToOfferResponse(&res.Accepted),
		Rejected: dto.ToOfferResponses(res.Rejected),
		Listing:  dto.ToListingResponse(&res.Listing),
	}, nil
}

func (s *negotiationService) RejectOffer(ctx context.Context, offerID string, sellerID string) (*domain.Offer, error) {
	o, effects, err := s.market.RejectOffer(sellerID, offerID)
	if err != nil {
		s.LogRejected(ctx, err, "Offer rejection refused", slog.String("offer_id", offerID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Offer rejected", slog.String("offer_id", offerID))
	return &o, nil
}

func (s *negotiationService) ListOffers(ctx context.Context, listingID string) ([]domain.Offer, error) {
	offers, err := s.market.Offers(listingID)
	if err != nil {
		s.LogRejected(ctx, err, "Offer listing failed", slog.String("listing_id", listingID))
		return nil, err
	}
	return offers, nil
}
