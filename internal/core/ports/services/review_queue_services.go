package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// ReviewQueueSvc is the administrative surface over pending escrow transactions.
type ReviewQueueSvc interface {
	// ListPending returns HELD and FULFILLMENT_PENDING transactions, oldest first.
	ListPending(ctx context.Context, actorID string) ([]domain.EscrowTransaction, error)

	// Resolve applies an approve or reject decision.
	Resolve(ctx context.Context, escrowID string, req dto.ResolveEscrowRequest, actorID string) (*domain.EscrowTransaction, error)
}
