package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewListing is the input to CreateListing.
type NewListing struct {
	SellerID    string
	Title       string
	Description string
	Category    string
	Price       decimal.Decimal
	Negotiable  bool
}

// ListingFilter narrows Listings. Zero fields match everything.
type ListingFilter struct {
	Status   domain.ListingStatus
	SellerID string
	Category string
}

func (f ListingFilter) matches(l *domain.Listing) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.SellerID != "" && l.SellerID != f.SellerID {
		return false
	}
	if f.Category != "" && !strings.EqualFold(l.Category, f.Category) {
		return false
	}
	return true
}

// CreateListing posts a new ACTIVE listing for an active seller.
func (m *Marketplace) CreateListing(in NewListing) (domain.Listing, []domain.Effect, error) {
	if !in.Price.IsPositive() {
		return domain.Listing{}, nil, fmt.Errorf("%w: price must be positive, got %s", apperrors.ErrInvalidPrice, in.Price)
	}
	if strings.TrimSpace(in.Title) == "" {
		return domain.Listing{}, nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}

	id := m.newID()
	release := m.mutate(accountKey(in.SellerID), listingKey(id))
	defer release()

	seller := m.lookupAccount(in.SellerID)
	if seller == nil {
		return domain.Listing{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, in.SellerID)
	}
	if !seller.IsActive() {
		return domain.Listing{}, nil, fmt.Errorf("%w: account %s is %s", apperrors.ErrForbidden, seller.AccountID, seller.Status)
	}

	now := m.now()
	l := &domain.Listing{
		ListingID:   id,
		SellerID:    in.SellerID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Negotiable:  in.Negotiable,
		Status:      domain.ListingActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     in.SellerID,
			LastUpdatedAt: now,
			LastUpdatedBy: in.SellerID,
		},
	}
	m.index.Lock()
	m.listings[id] = l
	m.index.Unlock()

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionListings),
		m.notice(in.SellerID, domain.CategoryUser, "Listing published", "%q is live at %s", l.Title, money(l.Price)),
	}
	return *l, effects, nil
}

// Listing returns a copy of the listing with the given id.
func (m *Marketplace) Listing(id string) (domain.Listing, error) {
	unlock := m.locks.Lock(listingKey(id))
	defer unlock()
	l := m.lookupListing(id)
	if l == nil {
		return domain.Listing{}, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, id)
	}
	return *l, nil
}

// Listings returns the listings matching f, newest first.
func (m *Marketplace) Listings(f ListingFilter) []domain.Listing {
	release := m.quiesce()
	defer release()

	out := make([]domain.Listing, 0)
	for _, l := range m.listings {
		if f.matches(l) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ListingID < out[j].ListingID
	})
	return out
}

// ModerateListing applies an administrative action to a listing.
func (m *Marketplace) ModerateListing(actorID, listingID string, action domain.ModerationAction) (domain.Listing, []domain.Effect, error) {
	target, err := domain.ModerationTarget(action)
	if err != nil {
		return domain.Listing{}, nil, err
	}
	if err := m.requireAdmin(actorID); err != nil {
		return domain.Listing{}, nil, err
	}

	release := m.mutate(listingKey(listingID))
	defer release()

	l := m.lookupListing(listingID)
	if l == nil {
		return domain.Listing{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	if err := l.TransitionTo(target); err != nil {
		return domain.Listing{}, nil, err
	}
	l.Touch(actorID, m.now())

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionListings),
		m.notice(l.SellerID, domain.CategorySystem, "Listing moderated", "%q is now %s", l.Title, l.Status),
	}
	return *l, effects, nil
}

// MarkSold moves an ACTIVE listing to SOLD.
func (m *Marketplace) MarkSold(listingID string) (domain.Listing, []domain.Effect, error) {
	return m.advanceListing(listingID, domain.ListingSold)
}

// MarkCompleted moves a SOLD listing to COMPLETED.
func (m *Marketplace) MarkCompleted(listingID string) (domain.Listing, []domain.Effect, error) {
	return m.advanceListing(listingID, domain.ListingCompleted)
}

func (m *Marketplace) advanceListing(listingID string, to domain.ListingStatus) (domain.Listing, []domain.Effect, error) {
	release := m.mutate(listingKey(listingID))
	defer release()

	l := m.lookupListing(listingID)
	if l == nil {
		return domain.Listing{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	if err := l.TransitionTo(to); err != nil {
		return domain.Listing{}, nil, err
	}
	l.LastUpdatedAt = m.now()
	return *l, []domain.Effect{domain.PersistEffect(domain.CollectionListings)}, nil
}

// RepriceListing lets a seller change the price of an ACTIVE listing as long as
// no offer has been accepted against it.
func (m *Marketplace) RepriceListing(actorID, listingID string, price decimal.Decimal) (domain.Listing, []domain.Effect, error) {
	if !price.IsPositive() {
		return domain.Listing{}, nil, fmt.Errorf("%w: price must be positive, got %s", apperrors.ErrInvalidPrice, price)
	}

	release := m.mutate(listingKey(listingID))
	defer release()

	l := m.lookupListing(listingID)
	if l == nil {
		return domain.Listing{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	if l.SellerID != actorID {
		return domain.Listing{}, nil, fmt.Errorf("%w: only the seller may reprice listing %s", apperrors.ErrForbidden, listingID)
	}
	if l.Status != domain.ListingActive {
		return domain.Listing{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrInvalidState, listingID, l.Status)
	}
	if m.acceptedOffer(listingID) != nil {
		return domain.Listing{}, nil, fmt.Errorf("%w: listing %s has an accepted offer", apperrors.ErrInvalidState, listingID)
	}
	l.Price = price
	l.Touch(actorID, m.now())

	return *l, []domain.Effect{domain.PersistEffect(domain.CollectionListings)}, nil
}

// acceptedOffer returns the accepted offer on a listing, if any. Callers hold the listing key.
func (m *Marketplace) acceptedOffer(listingID string) *domain.Offer {
	for _, o := range m.offersOf(listingID) {
		if o.Status == domain.OfferAccepted {
			return o
		}
	}
	return nil
}
