package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/utils/pagination"
)

type escrowService struct {
	BaseService
	market  *market.Marketplace
	effects *EffectRunner
}

// NewEscrowService creates a new escrow service.
func NewEscrowService(m *market.Marketplace, effects *EffectRunner) portssvc.EscrowSvcFacade {
	return &escrowService{market: m, effects: effects}
}

var _ portssvc.EscrowSvcFacade = (*escrowService)(nil)

func (s *escrowService) isAdmin(accountID string) bool {
	acc, err := s.market.Account(accountID)
	return err == nil && acc.Role == domain.RoleAdmin
}

// GetEscrow hides transactions the caller is not party to behind ErrNotFound.
func (s *escrowService) GetEscrow(ctx context.Context, escrowID string, accountID string) (*domain.EscrowTransaction, error) {
	tx, err := s.market.Escrow(escrowID)
	if err != nil {
		s.LogRejected(ctx, err, "Escrow lookup failed", slog.String("escrow_id", escrowID))
		return nil, err
	}
	if tx.BuyerID != accountID && tx.SellerID != accountID && !s.isAdmin(accountID) {
		s.LogInfo(ctx, "Escrow lookup by non-party", slog.String("escrow_id", escrowID), slog.String("account_id", accountID))
		return nil, fmt.Errorf("%w: escrow %s", apperrors.ErrNotFound, escrowID)
	}
	return &tx, nil
}

// ListEscrows pages with an opaque (createdAt, id) cursor. Administrators see every transaction.
func (s *escrowService) ListEscrows(ctx context.Context, accountID string, params dto.ListEscrowsParams) ([]domain.EscrowTransaction, string, error) {
	filter := market.EscrowFilter{PartyID: accountID, Status: params.Status}
	if s.isAdmin(accountID) {
		filter.PartyID = ""
	}
	all := s.market.Escrows(filter)

	if params.NextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(all)
		for i, tx := range all {
			if pagination.After(tx.CreatedAt, tx.EscrowID, cursorAt, cursorID) {
				start = i
				break
			}
		}
		all = all[start:]
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(all) <= limit {
		return all, "", nil
	}
	page := all[:limit]
	last := page[len(page)-1]
	return page, pagination.EncodeToken(last.CreatedAt, last.EscrowID), nil
}

func (s *escrowService) Initiate(ctx context.Context, listingID string, buyerID string) (*domain.EscrowTransaction, error) {
	tx, effects, err := s.market.Initiate(listingID, buyerID)
	if err != nil {
		s.LogRejected(ctx, err, "Purchase rejected", slog.String("listing_id", listingID), slog.String("buyer_id", buyerID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Escrow opened",
		slog.String("escrow_id", tx.EscrowID),
		slog.String("listing_id", listingID),
		slog.String("amount", tx.Amount.String()),
		slog.String("fee", tx.Fee.String()))
	return &tx, nil
}

func (s *escrowService) SubmitProof(ctx context.Context, escrowID string, req dto.SubmitProofRequest, sellerID string) (*domain.EscrowTransaction, error) {
	tx, effects, err := s.market.SubmitProof(escrowID, sellerID, req.ProofRef)
	if err != nil {
		s.LogRejected(ctx, err, "Proof submission rejected", slog.String("escrow_id", escrowID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Fulfillment proof submitted", slog.String("escrow_id", escrowID))
	return &tx, nil
}

func (s *escrowService) Approve(ctx context.Context, escrowID string, actorID string, notes string) (*domain.EscrowTransaction, error) {
	tx, effects, err := s.market.Approve(escrowID, actorID, notes)
	if err != nil {
		s.LogRejected(ctx, err, "Escrow approval rejected", slog.String("escrow_id", escrowID), slog.String("actor_id", actorID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Escrow approved",
		slog.String("escrow_id", escrowID),
		slog.String("seller_payout", tx.SellerPayout().String()),
		slog.String("fee", tx.Fee.String()))
	return &tx, nil
}

func (s *escrowService) Reject(ctx context.Context, escrowID string, actorID string, notes string) (*domain.EscrowTransaction, error) {
	tx, effects, err := s.market.Reject(escrowID, actorID, notes)
	if err != nil {
		s.LogRejected(ctx, err, "Escrow rejection refused", slog.String("escrow_id", escrowID), slog.String("actor_id", actorID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Escrow rejected and refunded", slog.String("escrow_id", escrowID), slog.String("amount", tx.Amount.String()))
	return &tx, nil
}
