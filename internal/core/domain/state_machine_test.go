package domain_test

import (
	"testing"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allListingStatuses = []domain.ListingStatus{
	domain.ListingDraft,
	domain.ListingActive,
	domain.ListingSuspended,
	domain.ListingSold,
	domain.ListingCompleted,
	domain.ListingBlocked,
}

var allEscrowStatuses = []domain.EscrowStatus{
	domain.EscrowHeld,
	domain.EscrowFulfillmentPending,
	domain.EscrowApproved,
	domain.EscrowRejected,
}

func TestListingStateMachineCompleteness(t *testing.T) {
	for _, s := range allListingStatuses {
		next := domain.NextListingStatuses(s)
		switch s {
		case domain.ListingCompleted:
			assert.Empty(t, next, "completed is terminal")
		case domain.ListingBlocked:
			assert.Equal(t, []domain.ListingStatus{domain.ListingActive}, next, "blocked only leaves through reactivation")
		default:
			assert.NotEmpty(t, next, "%s must have a way out", s)
		}
	}

	assert.False(t, domain.CanTransitionListing(domain.ListingSold, domain.ListingActive))
	assert.True(t, domain.CanTransitionListing(domain.ListingActive, domain.ListingSold))
	assert.True(t, domain.CanTransitionListing(domain.ListingSold, domain.ListingCompleted))
	assert.True(t, domain.CanTransitionListing(domain.ListingSuspended, domain.ListingActive))
}

func TestListingTransitionTo(t *testing.T) {
	l := domain.Listing{ListingID: "l1", Status: domain.ListingActive}
	require.NoError(t, l.TransitionTo(domain.ListingSold))
	assert.Equal(t, domain.ListingSold, l.Status)

	err := l.TransitionTo(domain.ListingActive)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, domain.ListingSold, l.Status)

	require.NoError(t, l.RevertSale())
	assert.Equal(t, domain.ListingActive, l.Status)
	assert.ErrorIs(t, l.RevertSale(), apperrors.ErrInvalidTransition)
}

func TestModerationTarget(t *testing.T) {
	cases := map[domain.ModerationAction]domain.ListingStatus{
		domain.ModerationSuspend:    domain.ListingSuspended,
		domain.ModerationBlock:      domain.ListingBlocked,
		domain.ModerationReactivate: domain.ListingActive,
	}
	for action, want := range cases {
		got, err := domain.ModerationTarget(action)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := domain.ModerationTarget("delete")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEscrowStateMachineCompleteness(t *testing.T) {
	for _, policy := range []domain.EscrowPolicy{{AllowApproveFromHeld: true}, {AllowApproveFromHeld: false}} {
		for _, s := range allEscrowStatuses {
			next := domain.NextEscrowStatuses(s, policy)
			if s.IsTerminal() {
				assert.Empty(t, next, "%s is terminal", s)
				assert.False(t, s.IsPendingReview())
			} else {
				assert.NotEmpty(t, next, "%s must have a way out", s)
				assert.Contains(t, next, domain.EscrowRejected)
				assert.True(t, s.IsPendingReview())
			}
		}
	}
	assert.Contains(t, domain.NextEscrowStatuses(domain.EscrowHeld, domain.EscrowPolicy{AllowApproveFromHeld: true}), domain.EscrowApproved)
	assert.NotContains(t, domain.NextEscrowStatuses(domain.EscrowHeld, domain.EscrowPolicy{}), domain.EscrowApproved)
}

func TestEscrowChecks(t *testing.T) {
	tx := domain.EscrowTransaction{
		EscrowID: "e1",
		SellerID: "seller",
		BuyerID:  "buyer",
		Amount:   decimal.NewFromInt(300),
		Fee:      decimal.NewFromInt(3),
		Status:   domain.EscrowHeld,
	}
	assert.Equal(t, "297", tx.SellerPayout().String())

	assert.NoError(t, tx.CheckSubmitProof("seller"))
	assert.ErrorIs(t, tx.CheckSubmitProof("buyer"), apperrors.ErrForbidden)
	assert.NoError(t, tx.CheckApprove(domain.EscrowPolicy{AllowApproveFromHeld: true}))
	assert.ErrorIs(t, tx.CheckApprove(domain.EscrowPolicy{}), apperrors.ErrInvalidState)
	assert.NoError(t, tx.CheckReject())

	tx.Status = domain.EscrowFulfillmentPending
	assert.ErrorIs(t, tx.CheckSubmitProof("seller"), apperrors.ErrInvalidState)
	assert.NoError(t, tx.CheckApprove(domain.EscrowPolicy{}))

	for _, terminal := range []domain.EscrowStatus{domain.EscrowApproved, domain.EscrowRejected} {
		tx.Status = terminal
		assert.ErrorIs(t, tx.CheckSubmitProof("seller"), apperrors.ErrAlreadyResolved)
		assert.ErrorIs(t, tx.CheckApprove(domain.EscrowPolicy{AllowApproveFromHeld: true}), apperrors.ErrAlreadyResolved)
		assert.ErrorIs(t, tx.CheckReject(), apperrors.ErrAlreadyResolved)
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleMerchant, domain.RoleDistributor, domain.RoleUser} {
		assert.True(t, r.IsValid())
	}
	assert.False(t, domain.Role("ROOT").IsValid())
}
