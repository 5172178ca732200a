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
)

type reviewQueueService struct {
	BaseService
	market  *market.Marketplace
	effects *EffectRunner
}

// NewReviewQueueService creates the administrative review queue.
func NewReviewQueueService(m *market.Marketplace, effects *EffectRunner) portssvc.ReviewQueueSvc {
	return &reviewQueueService{market: m, effects: effects}
}

var _ portssvc.ReviewQueueSvc = (*reviewQueueService)(nil)

func (s *reviewQueueService) ListPending(ctx context.Context, actorID string) ([]domain.EscrowTransaction, error) {
	acc, err := s.market.Account(actorID)
	if err != nil || acc.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only administrators may view the review queue", apperrors.ErrForbidden)
	}
	pending := s.market.PendingReview()
	s.LogDebug(ctx, "Review queue listed", slog.Int("pending", len(pending)))
	return pending, nil
}

func (s *reviewQueueService) Resolve(ctx context.Context, escrowID string, req dto.ResolveEscrowRequest, actorID string) (*domain.EscrowTransaction, error) {
	tx, effects, err := s.market.Resolve(escrowID, actorID, req.Decision, req.Notes)
	if err != nil {
		s.LogRejected(ctx, err, "Escrow resolution rejected",
			slog.String("escrow_id", escrowID),
			slog.String("decision", string(req.Decision)),
			slog.String("actor_id", actorID))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Escrow resolved",
		slog.String("escrow_id", escrowID),
		slog.String("status", string(tx.Status)),
		slog.String("actor_id", actorID))
	return &tx, nil
}
