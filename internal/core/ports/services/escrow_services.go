package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// EscrowReaderSvc defines read operations for escrow transactions
type EscrowReaderSvc interface {
	// GetEscrow returns a transaction visible to accountID: its buyer, its seller or an administrator.
	GetEscrow(ctx context.Context, escrowID string, accountID string) (*domain.EscrowTransaction, error)

	// ListEscrows returns a page of the transactions where accountID is buyer or seller,
	// oldest first, and the token for the next page when there is one.
	ListEscrows(ctx context.Context, accountID string, params dto.ListEscrowsParams) ([]domain.EscrowTransaction, string, error)
}

// EscrowWriterSvc defines the escrow state machine transitions
type EscrowWriterSvc interface {
	// Initiate debits the buyer, opens a HELD transaction and marks the listing SOLD.
	Initiate(ctx context.Context, listingID string, buyerID string) (*domain.EscrowTransaction, error)

	// SubmitProof moves a HELD transaction to FULFILLMENT_PENDING.
	SubmitProof(ctx context.Context, escrowID string, req dto.SubmitProofRequest, sellerID string) (*domain.EscrowTransaction, error)

	// Approve releases the funds to the seller.
	Approve(ctx context.Context, escrowID string, actorID string, notes string) (*domain.EscrowTransaction, error)

	// Reject refunds the buyer.
	Reject(ctx context.Context, escrowID string, actorID string, notes string) (*domain.EscrowTransaction, error)
}

// EscrowSvcFacade combines all escrow-related service interfaces
type EscrowSvcFacade interface {
	EscrowReaderSvc
	EscrowWriterSvc
}
