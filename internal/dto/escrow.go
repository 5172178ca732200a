package dto

import (
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitProofRequest attaches fulfillment proof, such as a tracking number or document URL.
type SubmitProofRequest struct {
	ProofRef string `json:"proofRef" binding:"required,max=500" example:"TRACK-001"`
}

// ResolveEscrowRequest carries an administrator's decision.
type ResolveEscrowRequest struct {
	Decision domain.Decision `json:"decision" binding:"required,oneof=approve reject" example:"approve"`
	Notes    string          `json:"notes" binding:"max=1000"`
}

// ListEscrowsParams defines query parameters for listing escrow transactions.
type ListEscrowsParams struct {
	Status    domain.EscrowStatus `form:"status" binding:"omitempty,oneof=HELD FULFILLMENT_PENDING APPROVED REJECTED"`
	Limit     int                 `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken string              `form:"nextToken"`
}

// EscrowResponse defines the data returned for an escrow transaction.
type EscrowResponse struct {
	EscrowID     string              `json:"escrowID"`
	ListingID    string              `json:"listingID"`
	BuyerID      string              `json:"buyerID"`
	SellerID     string              `json:"sellerID"`
	Amount       decimal.Decimal     `json:"amount"`
	Fee          decimal.Decimal     `json:"fee"`
	SellerPayout decimal.Decimal     `json:"sellerPayout"`
	Status       domain.EscrowStatus `json:"status"`
	ProofRef     string              `json:"proofRef,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	ResolvedBy   string              `json:"resolvedBy,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	FulfilledAt  *time.Time          `json:"fulfilledAt,omitempty"`
	ResolvedAt   *time.Time          `json:"resolvedAt,omitempty"`
}

// ListEscrowsResponse wraps the list of escrow transactions.
type ListEscrowsResponse struct {
	Escrows   []EscrowResponse `json:"escrows"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToEscrowResponse converts a domain.EscrowTransaction to EscrowResponse DTO
func ToEscrowResponse(tx *domain.EscrowTransaction) EscrowResponse {
	return EscrowResponse{
		EscrowID:     tx.EscrowID,
		ListingID:    tx.ListingID,
		BuyerID:      tx.BuyerID,
		SellerID:     tx.SellerID,
		Amount:       tx.Amount,
		Fee:          tx.Fee,
		SellerPayout: tx.SellerPayout(),
		Status:       tx.Status,
		ProofRef:     tx.ProofRef,
		Notes:        tx.Notes,
		ResolvedBy:   tx.ResolvedBy,
		CreatedAt:    tx.CreatedAt,
		FulfilledAt:  tx.FulfilledAt,
		ResolvedAt:   tx.ResolvedAt,
	}
}

// ToListEscrowsResponse converts a slice of domain.EscrowTransaction to ListEscrowsResponse DTO
func ToListEscrowsResponse(txs []domain.EscrowTransaction, nextToken string) ListEscrowsResponse {
	res := make([]EscrowResponse, len(txs))
	for i, tx := range txs {
		res[i] = ToEscrowResponse(&tx)
	}
	return ListEscrowsResponse{Escrows: res, NextToken: nextToken}
}
