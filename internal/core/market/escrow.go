package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EscrowFilter narrows Escrows. Zero fields match everything.
type EscrowFilter struct {
	// PartyID matches transactions where the account is buyer or seller.
	PartyID string
	Status  domain.EscrowStatus
}

// Fee returns the platform fee charged on a purchase of amount.
func (m *Marketplace) Fee(amount decimal.Decimal) decimal.Decimal {
	if !m.cfg.FeeRate.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(m.cfg.FeeRate).Round(2)
}

// Initiate commits a buyer to purchasing a listing at its current price. The
// buyer is debited, the transaction is created HELD and the listing is marked
// SOLD, all or nothing.
func (m *Marketplace) Initiate(listingID, buyerID string) (domain.EscrowTransaction, []domain.Effect, error) {
	l := m.lookupListing(listingID)
	if l == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, listingID)
	}
	sellerID := l.SellerID
	if sellerID == buyerID {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: sellers cannot buy their own listing", apperrors.ErrForbidden)
	}

	release := m.mutate(listingKey(listingID), accountKey(buyerID))
	defer release()

	if l.Status != domain.ListingActive {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrListingUnavailable, listingID, l.Status)
	}
	buyer := m.lookupAccount(buyerID)
	if buyer == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, buyerID)
	}
	amount := l.Price
	if err := checkDebit(buyer, amount); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}

	m.applyDebit(buyer, amount)
	_ = l.TransitionTo(domain.ListingSold)
	now := m.now()
	l.LastUpdatedAt = now

	tx := &domain.EscrowTransaction{
		EscrowID:  m.newEscrowID(),
		ListingID: listingID,
		BuyerID:   buyerID,
		SellerID:  sellerID,
		Amount:    amount,
		Fee:       m.Fee(amount),
		Status:    domain.EscrowHeld,
		CreatedAt: now,
	}
	m.index.Lock()
	m.escrows[tx.EscrowID] = tx
	m.index.Unlock()

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts, domain.CollectionListings, domain.CollectionEscrows),
		m.notice(buyerID, domain.CategoryMoney, "Funds held in escrow", "%s is held for %q until the order is confirmed", money(amount), l.Title),
		m.notice(sellerID, domain.CategoryUser, "New order", "%q was purchased, upload the shipping proof to get paid", l.Title),
		m.notice("", domain.CategorySystem, "Escrow opened", "Escrow %s holds %s for listing %s", tx.EscrowID, money(amount), listingID),
	}
	return *tx, effects, nil
}

// SubmitProof attaches the seller's fulfillment proof to a HELD transaction.
func (m *Marketplace) SubmitProof(escrowID, actorID, proofRef string) (domain.EscrowTransaction, []domain.Effect, error) {
	release := m.mutate(escrowKey(escrowID))
	defer release()

	tx := m.lookupEscrow(escrowID)
	if tx == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: escrow %s", apperrors.ErrNotFound, escrowID)
	}
	if err := tx.CheckSubmitProof(actorID); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: proof reference is required", apperrors.ErrValidation)
	}

	now := m.now()
	tx.Status = domain.EscrowFulfillmentPending
	tx.ProofRef = proofRef
	tx.FulfilledAt = &now

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionEscrows),
		m.notice(tx.BuyerID, domain.CategoryUser, "Order shipped", "The seller attached proof %s to escrow %s", proofRef, escrowID),
		m.notice("", domain.CategorySystem, "Escrow awaiting review", "Escrow %s has fulfillment proof and awaits review", escrowID),
	}
	return *tx, effects, nil
}

// Approve releases the held funds: the seller receives amount minus fee and the
// treasury receives the fee. The listing becomes COMPLETED.
func (m *Marketplace) Approve(escrowID, actorID, notes string) (domain.EscrowTransaction, []domain.Effect, error) {
	if err := m.requireAdmin(actorID); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}
	tx := m.lookupEscrow(escrowID)
	if tx == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: escrow %s", apperrors.ErrNotFound, escrowID)
	}
	treasuryID := m.cfg.TreasuryAccountID
	keys := []string{escrowKey(escrowID), listingKey(tx.ListingID), accountKey(tx.SellerID)}
	if treasuryID != "" {
		keys = append(keys, accountKey(treasuryID))
	}

	release := m.mutate(keys...)
	defer release()

	if err := tx.CheckApprove(m.cfg.Policy); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}
	l := m.lookupListing(tx.ListingID)
	if l == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, tx.ListingID)
	}
	if !domain.CanTransitionListing(l.Status, domain.ListingCompleted) {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrInvalidTransition, l.ListingID, l.Status)
	}
	seller := m.lookupAccount(tx.SellerID)
	if seller == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, tx.SellerID)
	}
	var treasury *domain.Account
	if tx.Fee.IsPositive() {
		if treasury = m.lookupAccount(treasuryID); treasury == nil {
			return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: treasury account %q is not configured", apperrors.ErrInternal, treasuryID)
		}
	}

	payout := tx.SellerPayout()
	if payout.IsPositive() {
		m.applyCredit(seller, payout)
	}
	if treasury != nil {
		m.applyCredit(treasury, tx.Fee)
	}
	_ = l.TransitionTo(domain.ListingCompleted)
	m.resolve(tx, domain.EscrowApproved, actorID, notes)
	l.LastUpdatedAt = *tx.ResolvedAt

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts, domain.CollectionListings, domain.CollectionEscrows),
		m.notice(tx.SellerID, domain.CategoryMoney, "Escrow released", "%s from escrow %s was credited to your balance", money(payout), escrowID),
		m.notice(tx.BuyerID, domain.CategoryUser, "Order completed", "Escrow %s was approved", escrowID),
	}
	return *tx, effects, nil
}

// Reject refunds the buyer in full and puts the listing back on sale.
func (m *Marketplace) Reject(escrowID, actorID, notes string) (domain.EscrowTransaction, []domain.Effect, error) {
	if err := m.requireAdmin(actorID); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}
	tx := m.lookupEscrow(escrowID)
	if tx == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: escrow %s", apperrors.ErrNotFound, escrowID)
	}

	release := m.mutate(escrowKey(escrowID), listingKey(tx.ListingID), accountKey(tx.BuyerID))
	defer release()

	if err := tx.CheckReject(); err != nil {
		return domain.EscrowTransaction{}, nil, err
	}
	l := m.lookupListing(tx.ListingID)
	if l == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s", apperrors.ErrNotFound, tx.ListingID)
	}
	if l.Status != domain.ListingSold {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: listing %s is %s", apperrors.ErrInvalidTransition, l.ListingID, l.Status)
	}
	buyer := m.lookupAccount(tx.BuyerID)
	if buyer == nil {
		return domain.EscrowTransaction{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, tx.BuyerID)
	}

	m.applyCredit(buyer, tx.Amount)
	_ = l.RevertSale()
	m.resolve(tx, domain.EscrowRejected, actorID, notes)
	l.LastUpdatedAt = *tx.ResolvedAt

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts, domain.CollectionListings, domain.CollectionEscrows),
		m.notice(tx.BuyerID, domain.CategoryMoney, "Escrow refunded", "%s from escrow %s was returned to your balance", money(tx.Amount), escrowID),
		m.notice(tx.SellerID, domain.CategoryUser, "Order rejected", "Escrow %s was rejected and the listing is back on sale", escrowID),
	}
	return *tx, effects, nil
}

func (m *Marketplace) resolve(tx *domain.EscrowTransaction, status domain.EscrowStatus, actorID, notes string) {
	now := m.now()
	tx.Status = status
	tx.ResolvedBy = actorID
	tx.Notes = strings.TrimSpace(notes)
	tx.ResolvedAt = &now
}

// Escrow returns a copy of the transaction with the given id.
func (m *Marketplace) Escrow(escrowID string) (domain.EscrowTransaction, error) {
	unlock := m.locks.Lock(escrowKey(escrowID))
	defer unlock()
	tx := m.lookupEscrow(escrowID)
	if tx == nil {
		return domain.EscrowTransaction{}, fmt.Errorf("%w: escrow %s", apperrors.ErrNotFound, escrowID)
	}
	return *tx, nil
}

// Escrows returns the transactions matching f, oldest first.
func (m *Marketplace) Escrows(f EscrowFilter) []domain.EscrowTransaction {
	release := m.quiesce()
	defer release()

	out := make([]domain.EscrowTransaction, 0)
	for _, tx := range m.escrows {
		if f.PartyID != "" && tx.BuyerID != f.PartyID && tx.SellerID != f.PartyID {
			continue
		}
		if f.Status != "" && tx.Status != f.Status {
			continue
		}
		out = append(out, *tx)
	}
	sort.Slice(out, func(i, j int) bool { return escrowLess(out[i], out[j]) })
	return out
}
