package market

import (
	"fmt"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AcceptResult reports what an accepted offer changed.
type AcceptResult struct {
	Accepted domain.Offer
	Rejected []domain.Offer
	Listing  domain.Listing
}

// SubmitOffer records a buyer's proposed price on a negotiable listing.
func (m *Marketplace) SubmitOffer(listingID, buyerID string, amount decimal.Decimal) (domain.Offer, []domain.Effect, error) {
	release := m.mutate(listingKey(listingID), accountKey(buyerID))
	defer release()

	l := m.lookupListing(listingID)
	if l == nil {
		return domain.Offer{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	if !l.Negotiable {
		return domain.Offer{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotNegotiable, listingID)
	}
	if !amount.IsPositive() {
		return domain.Offer{}, nil, fmt.Errorf("%w: offer must be positive, got %s", apperrors.ErrInvalidAmount, amount)
	}
	buyer := m.lookupAccount(buyerID)
	if buyer == nil {
		return domain.Offer{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, buyerID)
	}
	if !buyer.IsActive() {
		return domain.Offer{}, nil, fmt.Errorf("%w: account %s is %s", apperrors.ErrForbidden, buyerID, buyer.Status)
	}
	if buyerID == l.SellerID {
		return domain.Offer{}, nil, fmt.Errorf("%w: sellers cannot bid on their own listing", apperrors.ErrForbidden)
	}
	if l.Status != domain.ListingActive {
		return domain.Offer{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrListingUnavailable, listingID, l.Status)
	}
	if m.acceptedOffer(listingID) != nil {
		return domain.Offer{}, nil, fmt.Errorf("%w: listing %s already has an accepted offer", apperrors.ErrInvalidState, listingID)
	}

	o := &domain.Offer{
		OfferID:   m.newID(),
		ListingID: listingID,
		BuyerID:   buyerID,
		Amount:    amount,
		Status:    domain.OfferPending,
		CreatedAt: m.now(),
	}
	m.index.Lock()
	m.offers[o.OfferID] = o
	m.offersByLi[listingID] = append(m.offersByLi[listingID], o.OfferID)
	m.index.Unlock()

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionOffers),
		m.notice(l.SellerID, domain.CategoryUser, "New offer", "%s offered %s for %q", buyer.Username, money(amount), l.Title),
	}
	return *o, effects, nil
}

// AcceptOffer accepts a pending offer, rejects every other pending offer on the
// same listing and sets the listing price to the accepted amount.
func (m *Marketplace) AcceptOffer(actorID, offerID string) (AcceptResult, []domain.Effect, error) {
	o := m.lookupOffer(offerID)
	if o == nil {
		return AcceptResult{}, nil, fmt.Errorf("%w: offer %s", apperrors.ErrNotFound, offerID)
	}
	listingID := o.ListingID

	release := m.mutate(listingKey(listingID))
	defer release()

	l := m.lookupListing(listingID)
	if l == nil {
		return AcceptResult{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	if l.SellerID != actorID {
		return AcceptResult{}, nil, fmt.Errorf("%w: only the seller may accept offers on listing %s", apperrors.ErrForbidden, listingID)
	}
	if !o.IsPending() {
		return AcceptResult{}, nil, fmt.Errorf("%w: offer %s is %s", apperrors.ErrInvalidState, offerID, o.Status)
	}
	if l.Status != domain.ListingActive {
		return AcceptResult{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrListingUnavailable, listingID, l.Status)
	}

	now := m.now()
	res := AcceptResult{}
	effects := []domain.Effect{domain.PersistEffect(domain.CollectionOffers, domain.CollectionListings)}
	for _, other := range m.offersOf(listingID) {
		if other.OfferID == offerID || !other.IsPending() {
			continue
		}
		other.Status = domain.OfferRejected
		other.ResolvedAt = &now
		res.Rejected = append(res.Rejected, *other)
		effects = append(effects, m.notice(other.BuyerID, domain.CategoryUser, "Offer declined",
			"Your offer of %s for %q was declined", money(other.Amount), l.Title))
	}
	o.Status = domain.OfferAccepted
	o.ResolvedAt = &now
	l.Price = o.Amount
	l.Touch(actorID, now)

	res.Accepted = *o
	res.Listing = *l
	effects = append(effects, m.notice(o.BuyerID, domain.CategoryUser, "Offer accepted",
		"Your offer of %s for %q was accepted", money(o.Amount), l.Title))
	return res, effects, nil
}

// RejectOffer declines a single pending offer.
func (m *Marketplace) RejectOffer(actorID, offerID string) (domain.Offer, []domain.Effect, error) {
	o := m.lookupOffer(offerID)
	if o == nil {
		return domain.Offer{}, nil, fmt.Errorf("%w: offer %s", apperrors.ErrNotFound, offerID)
	}

	release := m.mutate(listingKey(o.ListingID))
	defer release()

	l := m.lookupListing(o.ListingID)
	if l == nil {
		return domain.Offer{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, o.ListingID)
	}
	if l.SellerID != actorID {
		return domain.Offer{}, nil, fmt.Errorf("%w: only the seller may reject offers on listing %s", apperrors.ErrForbidden, l.ListingID)
	}
	if !o.IsPending() {
		return domain.Offer{}, nil, fmt.Errorf("%w: offer %s is %s", apperrors.ErrInvalidState, offerID, o.Status)
	}
	now := m.now()
	o.Status = domain.OfferRejected
	o.ResolvedAt = &now

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionOffers),
		m.notice(o.BuyerID, domain.CategoryUser, "Offer declined", "Your offer of %s for %q was declined", money(o.Amount), l.Title),
	}
	return *o, effects, nil
}

// Offer returns a copy of the offer with the given id.
func (m *Marketplace) Offer(offerID string) (domain.Offer, error) {
	o := m.lookupOffer(offerID)
	if o == nil {
		return domain.Offer{}, fmt.Errorf("%w: offer %s", apperrors.ErrNotFound, offerID)
	}
	unlock := m.locks.Lock(listingKey(o.ListingID))
	defer unlock()
	return *o, nil
}

// Offers lists the offers on a listing, oldest first.
func (m *Marketplace) Offers(listingID string) ([]domain.Offer, error) {
	unlock := m.locks.Lock(listingKey(listingID))
	defer unlock()

	if m.lookupListing(listingID) == nil {
		return nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	offers := m.offersOf(listingID)
	out := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, *o)
	}
	return out, nil
}
