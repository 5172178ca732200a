package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EscrowStatus is the state of an escrow transaction.
type EscrowStatus string

const (
	EscrowHeld               EscrowStatus = "HELD"
	EscrowFulfillmentPending EscrowStatus = "FULFILLMENT_PENDING"
	EscrowApproved           EscrowStatus = "APPROVED"
	EscrowRejected           EscrowStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is possible from s.
func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowApproved || s == EscrowRejected
}

// IsPendingReview reports whether s still awaits an administrator.
func (s EscrowStatus) IsPendingReview() bool {
	return s == EscrowHeld || s == EscrowFulfillmentPending
}

// Decision is the outcome an administrator picks for an escrow transaction.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// EscrowPolicy holds the tunable rules of the escrow state machine.
type EscrowPolicy struct {
	// AllowApproveFromHeld lets an administrator release funds before the seller
	// has attached fulfillment proof.
	AllowApproveFromHeld bool
}

// NextEscrowStatuses returns the statuses reachable from s under policy p.
func NextEscrowStatuses(s EscrowStatus, p EscrowPolicy) []EscrowStatus {
	switch s {
	case EscrowHeld:
		next := []EscrowStatus{EscrowFulfillmentPending, EscrowRejected}
		if p.AllowApproveFromHeld {
			next = append(next, EscrowApproved)
		}
		return next
	case EscrowFulfillmentPending:
		return []EscrowStatus{EscrowApproved, EscrowRejected}
	default:
		return nil
	}
}

// EscrowTransaction is the record of a fund hold tied to a purchase.
// Amount and Fee are fixed at creation; resolution moves exactly these values.
type EscrowTransaction struct {
	EscrowID    string          `json:"escrowID"`
	ListingID   string          `json:"listingID"`
	BuyerID     string          `json:"buyerID"`
	SellerID    string          `json:"sellerID"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	Status      EscrowStatus    `json:"status"`
	ProofRef    string          `json:"proofRef,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	ResolvedBy  string          `json:"resolvedBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	FulfilledAt *time.Time      `json:"fulfilledAt,omitempty"`
	ResolvedAt  *time.Time      `json:"resolvedAt,omitempty"`
}

// SellerPayout is what the seller receives on approval.
func (t EscrowTransaction) SellerPayout() decimal.Decimal {
	return t.Amount.Sub(t.Fee)
}

// CheckSubmitProof validates that the seller may attach fulfillment proof.
func (t EscrowTransaction) CheckSubmitProof(actorID string) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: escrow %s is %s", apperrors.ErrAlreadyResolved, t.EscrowID, t.Status)
	}
	if t.Status != EscrowHeld {
		return fmt.Errorf("%w: escrow %s is %s, proof requires %s", apperrors.ErrInvalidState, t.EscrowID, t.Status, EscrowHeld)
	}
	if actorID != t.SellerID {
		return fmt.Errorf("%w: only the seller of record may submit proof for escrow %s", apperrors.ErrForbidden, t.EscrowID)
	}
	return nil
}

// CheckApprove validates that funds may be released to the seller.
func (t EscrowTransaction) CheckApprove(p EscrowPolicy) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: escrow %s is %s", apperrors.ErrAlreadyResolved, t.EscrowID, t.Status)
	}
	if t.Status == EscrowHeld && !p.AllowApproveFromHeld {
		return fmt.Errorf("%w: escrow %s has no fulfillment proof yet", apperrors.ErrInvalidState, t.EscrowID)
	}
	return nil
}

// CheckReject validates that funds may be returned to the buyer.
func (t EscrowTransaction) CheckReject() error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: escrow %s is %s", apperrors.ErrAlreadyResolved, t.EscrowID, t.Status)
	}
	return nil
}
