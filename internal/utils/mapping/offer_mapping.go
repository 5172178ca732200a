package mapping

import (
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/models"
)

// ToModelOffer converts a domain Offer to a model Offer
func ToModelOffer(d domain.Offer) models.Offer {
	return models.Offer{
		OfferID:    d.OfferID,
		ListingID:  d.ListingID,
		BuyerID:    d.BuyerID,
		Amount:     d.Amount,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		ResolvedAt: d.ResolvedAt,
	}
}

// ToDomainOffer converts a model Offer to a domain Offer
func ToDomainOffer(m models.Offer) domain.Offer {
	return domain.Offer{
		OfferID:    m.OfferID,
		ListingID:  m.ListingID,
		BuyerID:    m.BuyerID,
		Amount:     m.Amount,
		Status:     domain.OfferStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ResolvedAt: m.ResolvedAt,
	}
}
