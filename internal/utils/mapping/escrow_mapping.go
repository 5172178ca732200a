package mapping

import (
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/models"
)

// ToModelEscrow converts a domain EscrowTransaction to a model EscrowTransaction
func ToModelEscrow(d domain.EscrowTransaction) models.EscrowTransaction {
	return models.EscrowTransaction{
		EscrowID:    d.EscrowID,
		ListingID:   d.ListingID,
		BuyerID:     d.BuyerID,
		SellerID:    d.SellerID,
		Amount:      d.Amount,
		Fee:         d.Fee,
		Status:      string(d.Status),
		ProofRef:    nullString(d.ProofRef),
		Notes:       nullString(d.Notes),
		ResolvedBy:  nullString(d.ResolvedBy),
		CreatedAt:   d.CreatedAt,
		FulfilledAt: d.FulfilledAt,
		ResolvedAt:  d.ResolvedAt,
	}
}

// ToDomainEscrow converts a model EscrowTransaction to a domain EscrowTransaction
func ToDomainEscrow(m models.EscrowTransaction) domain.EscrowTransaction {
	return domain.EscrowTransaction{
		EscrowID:    m.EscrowID,
		ListingID:   m.ListingID,
		BuyerID:     m.BuyerID,
		SellerID:    m.SellerID,
		Amount:      m.Amount,
		Fee:         m.Fee,
		Status:      domain.EscrowStatus(m.Status),
		ProofRef:    m.ProofRef.String,
		Notes:       m.Notes.String,
		ResolvedBy:  m.ResolvedBy.String,
		CreatedAt:   m.CreatedAt,
		FulfilledAt: m.FulfilledAt,
		ResolvedAt:  m.ResolvedAt,
	}
}
