package mapping

import (
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/models"
)

// ToModelListing converts a domain Listing to a model Listing
func ToModelListing(d domain.Listing) models.Listing {
	return models.Listing{
		ListingID:   d.ListingID,
		SellerID:    d.SellerID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		Negotiable:  d.Negotiable,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainListing converts a model Listing to a domain Listing
func ToDomainListing(m models.Listing) domain.Listing {
	return domain.Listing{
		ListingID:   m.ListingID,
		SellerID:    m.SellerID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Price:       m.Price,
		Negotiable:  m.Negotiable,
		Status:      domain.ListingStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
