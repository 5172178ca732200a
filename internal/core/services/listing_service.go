package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

type listingService struct {
	BaseService
	market  *market.Marketplace
	effects *EffectRunner
}

// NewListingService creates a new listing service.
func NewListingService(m *market.Marketplace, effects *EffectRunner) portssvc.ListingSvcFacade {
	return &listingService{market: m, effects: effects}
}

var _ portssvc.ListingSvcFacade = (*listingService)(nil)

func (s *listingService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	l, err := s.market.Listing(listingID)
	if err != nil {
		s.LogRejected(ctx, err, "Listing lookup failed", slog.String("listing_id", listingID))
		return nil, err
	}
	return &l, nil
}

func (s *listingService) ListListings(ctx context.Context, params dto.ListListingsParams) ([]domain.Listing, error) {
	listings := s.market.Listings(market.ListingFilter{
		Status:   params.Status,
		SellerID: params.SellerID,
		Category: params.Category,
	})
	s.LogDebug(ctx, "Listings listed", slog.Int("count", len(listings)))
	return listings, nil
}

func (s *listingService) CreateListing(ctx context.Context, req dto.CreateListingRequest, sellerID string) (*domain.Listing, error) {
	l, effects, err := s.market.CreateListing(market.NewListing{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Negotiable:  req.Negotiable,
	})
	if err != nil {
		s.LogRejected(ctx, err, "Listing creation rejected", slog.String("seller_id", sellerID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Listing created", slog.String("listing_id", l.ListingID), slog.String("price", l.Price.String()))
	return &l, nil
}

func (s *listingService) RepriceListing(ctx context.Context, listingID string, req dto.RepriceListingRequest, sellerID string) (*domain.Listing, error) {
	l, effects, err := s.market.RepriceListing(sellerID, listingID, req.Price)
	if err != nil {
		s.LogRejected(ctx, err, "Listing reprice rejected", slog.String("listing_id", listingID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Listing repriced", slog.String("listing_id", listingID), slog.String("price", l.Price.String()))
	return &l, nil
}

func (s *listingService) ModerateListing(ctx context.Context, listingID string, req dto.ModerateListingRequest, actorID string) (*domain.Listing, error) {
	l, effects, err := s.market.ModerateListing(actorID, listingID, req.Action)
	if err != nil {
		s.LogRejected(ctx, err, "Listing moderation rejected",
			slog.String("listing_id", listingID),
			slog.String("action", string(req.Action)))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Listing moderated", slog.String("listing_id", listingID), slog.String("status", string(l.Status)))
	return &l, nil
}

func (s *listingService) MarkSold(ctx context.Context, listingID string) (*domain.Listing, error) {
	l, effects, err := s.market.MarkSold(listingID)
	if err != nil {
		s.LogRejected(ctx, err, "Mark sold rejected", slog.String("listing_id", listingID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	return &l, nil
}

func (s *listingService) MarkCompleted(ctx context.Context, listingID string) (*domain.Listing, error) {
	l, effects, err := s.market.MarkCompleted(listingID)
	if err != nil {
		s.LogRejected(ctx, err, "Mark completed rejected", slog.String("listing_id", listingID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	return &l, nil
}
