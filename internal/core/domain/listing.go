package domain

import (
	"fmt"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ListingStatus is the lifecycle status of a listing.
type ListingStatus string

const (
	ListingDraft     ListingStatus = "DRAFT"
	ListingActive    ListingStatus = "ACTIVE"
	ListingSuspended ListingStatus = "SUSPENDED"
	ListingSold      ListingStatus = "SOLD"
	ListingCompleted ListingStatus = "COMPLETED"
	ListingBlocked   ListingStatus = "BLOCKED"
)

// ModerationAction is an administrative action against a listing.
type ModerationAction string

const (
	ModerationSuspend    ModerationAction = "suspend"
	ModerationBlock      ModerationAction = "block"
	ModerationReactivate ModerationAction = "reactivate"
)

// listingTransitions is the set of legal status changes. SOLD -> ACTIVE is
// deliberately absent: only an escrow refund may put a sold listing back on sale.
var listingTransitions = map[ListingStatus][]ListingStatus{
	ListingDraft:     {ListingActive, ListingBlocked},
	ListingActive:    {ListingSold, ListingSuspended, ListingBlocked},
	ListingSuspended: {ListingActive, ListingBlocked},
	ListingSold:      {ListingCompleted},
	ListingCompleted: nil,
	ListingBlocked:   {ListingActive},
}

// NextListingStatuses returns the statuses reachable from s in one step.
func NextListingStatuses(s ListingStatus) []ListingStatus {
	return listingTransitions[s]
}

// CanTransitionListing reports whether from -> to is a legal transition.
func CanTransitionListing(from, to ListingStatus) bool {
	for _, next := range listingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Listing is a sellable offer posted by a seller account.
type Listing struct {
	ListingID   string          `json:"listingID"`
	SellerID    string          `json:"sellerID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Negotiable  bool            `json:"negotiable"`
	Status      ListingStatus   `json:"status"`
	AuditFields
}

// TransitionTo moves the listing to status to, or fails with ErrInvalidTransition.
func (l *Listing) TransitionTo(to ListingStatus) error {
	if !CanTransitionListing(l.Status, to) {
		return fmt.Errorf("%w: listing %s cannot move from %s to %s", apperrors.ErrInvalidTransition, l.ListingID, l.Status, to)
	}
	l.Status = to
	return nil
}

// RevertSale puts a sold listing back on sale after its escrow was refunded.
func (l *Listing) RevertSale() error {
	if l.Status != ListingSold {
		return fmt.Errorf("%w: listing %s is %s, not %s", apperrors.ErrInvalidTransition, l.ListingID, l.Status, ListingSold)
	}
	l.Status = ListingActive
	return nil
}

// ModerationTarget maps a moderation action to the status it produces.
func ModerationTarget(action ModerationAction) (ListingStatus, error) {
	switch action {
	case ModerationSuspend:
		return ListingSuspended, nil
	case ModerationBlock:
		return ListingBlocked, nil
	case ModerationReactivate:
		return ListingActive, nil
	default:
		return "", fmt.Errorf("%w: unknown moderation action %q", apperrors.ErrValidation, action)
	}
}
