package market

import (
	"fmt"
	"sort"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
)

// PendingReview lists the transactions still awaiting an administrator, oldest
// first so nothing starves. Ties on creation time fall back to the id.
func (m *Marketplace) PendingReview() []domain.EscrowTransaction {
	release := m.quiesce()
	defer release()

	out := make([]domain.EscrowTransaction, 0)
	for _, tx := range m.escrows {
		if tx.Status.IsPendingReview() {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return escrowLess(out[i], out[j]) })
	return out
}

// Resolve finalises a transaction according to decision.
func (m *Marketplace) Resolve(escrowID, actorID string, decision domain.Decision, notes string) (domain.EscrowTransaction, []domain.Effect, error) {
	switch decision {
	case domain.DecisionApprove:
		return m.Approve(escrowID, actorID, notes)
	case domain.DecisionReject:
		return m.Reject(escrowID, actorID, notes)
	default:
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, decision)
	}
}
