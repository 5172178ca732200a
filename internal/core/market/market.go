// Package market holds the authoritative in-memory state of the escrow
// marketplace: accounts and their balances, listings, offers and escrow
// transactions. Every operation is synchronous, performs no I/O, and returns
// the side effects (persist, notify) the caller must run once it succeeds.
//
// Locking: every mutating operation holds gate for reading and then acquires
// the per-entity keys it touches through a keylock.KeyedMutex, always in sorted
// order. Offers are guarded by the key of their listing. Snapshot and the
// cross-collection listings take gate exclusively so they observe a state in
// which no operation is half applied. index guards the maps themselves and is
// never held while acquiring any other lock.
package market

import (
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/utils/keylock"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Config carries the tunable policy of the marketplace.
type Config struct {
	// TreasuryAccountID receives platform fees on approval.
	TreasuryAccountID string
	// FeeRate is the share of each purchase kept by the platform, in [0, 1).
	FeeRate decimal.Decimal
	Policy  domain.EscrowPolicy
}

// Option customises a Marketplace.
type Option func(*Marketplace)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Marketplace) {
		m.now = now
	}
}

// WithIDGenerator replaces the generator used for account, listing and offer ids.
func WithIDGenerator(gen func() string) Option {
	return func(m *Marketplace) {
		m.newID = gen
	}
}

// WithEscrowIDGenerator replaces the generator used for escrow transaction ids.
func WithEscrowIDGenerator(gen func() string) Option {
	return func(m *Marketplace) {
		m.newEscrowID = gen
	}
}

// Marketplace is the single owner of every collection. Nothing else mutates them.
type Marketplace struct {
	cfg Config

	gate  sync.RWMutex
	locks *keylock.KeyedMutex

	index      sync.RWMutex
	accounts   map[string]*domain.Account
	usernames  map[string]string
	listings   map[string]*domain.Listing
	offers     map[string]*domain.Offer
	offersByLi map[string][]string
	escrows    map[string]*domain.EscrowTransaction

	now         func() time.Time
	newID       func() string
	newEscrowID func() string
}

// New creates an empty Marketplace.
func New(cfg Config, opts ...Option) *Marketplace {
	m := &Marketplace{
		cfg:         cfg,
		locks:       keylock.New(),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		newEscrowID: func() string { return ulid.Make().String() },
	}
	m.reset()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the configuration the marketplace was built with.
func (m *Marketplace) Config() Config {
	return m.cfg
}

func (m *Marketplace) reset() {
	m.accounts = make(map[string]*domain.Account)
	m.usernames = make(map[string]string)
	m.listings = make(map[string]*domain.Listing)
	m.offers = make(map[string]*domain.Offer)
	m.offersByLi = make(map[string][]string)
	m.escrows = make(map[string]*domain.EscrowTransaction)
}

func accountKey(id string) string { return "acct:" + id }
func listingKey(id string) string { return "listing:" + id }
func escrowKey(id string) string  { return "escrow:" + id }

// mutate enters the shared side of gate and locks keys. The returned func undoes both.
func (m *Marketplace) mutate(keys ...string) func() {
	m.gate.RLock()
	unlock := m.locks.LockAll(keys...)
	return func() {
		unlock()
		m.gate.RUnlock()
	}
}

// quiesce waits for every in-flight operation and blocks new ones until released.
func (m *Marketplace) quiesce() func() {
	m.gate.Lock()
	return m.gate.Unlock
}

func (m *Marketplace) lookupAccount(id string) *domain.Account {
	m.index.RLock()
	defer m.index.RUnlock()
	return m.accounts[id]
}

func (m *Marketplace) lookupListing(id string) *domain.Listing {
	m.index.RLock()
	defer m.index.RUnlock()
	return m.listings[id]
}

func (m *Marketplace) lookupOffer(id string) *domain.Offer {
	m.index.RLock()
	defer m.index.RUnlock()
	return m.offers[id]
}

func (m *Marketplace) lookupEscrow(id string) *domain.EscrowTransaction {
	m.index.RLock()
	defer m.index.RUnlock()
	return m.escrows[id]
}

// offersOf returns the offers on a listing in creation order. Callers hold the listing key.
func (m *Marketplace) offersOf(listingID string) []*domain.Offer {
	m.index.RLock()
	defer m.index.RUnlock()
	ids := m.offersByLi[listingID]
	out := make([]*domain.Offer, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.offers[id])
	}
	return out
}

// Snapshot returns a consistent copy of every collection, each sorted by id.
func (m *Marketplace) Snapshot() domain.Snapshot {
	release := m.quiesce()
	defer release()

	snap := domain.Snapshot{
		Accounts: make([]domain.Account, 0, len(m.accounts)),
		Listings: make([]domain.Listing, 0, len(m.listings)),
		Offers:   make([]domain.Offer, 0, len(m.offers)),
		Escrows:  make([]domain.EscrowTransaction, 0, len(m.escrows)),
		TakenAt:  m.now(),
	}
	for _, a := range m.accounts {
		snap.Accounts = append(snap.Accounts, *a)
	}
	for _, l := range m.listings {
		snap.Listings = append(snap.Listings, *l)
	}
	for _, o := range m.offers {
		snap.Offers = append(snap.Offers, *o)
	}
	for _, e := range m.escrows {
		snap.Escrows = append(snap.Escrows, *e)
	}
	sort.Slice(snap.Accounts, func(i, j int) bool { return snap.Accounts[i].AccountID < snap.Accounts[j].AccountID })
	sort.Slice(snap.Listings, func(i, j int) bool { return snap.Listings[i].ListingID < snap.Listings[j].ListingID })
	sort.Slice(snap.Offers, func(i, j int) bool { return snap.Offers[i].OfferID < snap.Offers[j].OfferID })
	sort.Slice(snap.Escrows, func(i, j int) bool { return snap.Escrows[i].EscrowID < snap.Escrows[j].EscrowID })
	return snap
}

// Restore replaces the whole state with snap. It is meant for startup, before
// the marketplace serves any request.
func (m *Marketplace) Restore(snap domain.Snapshot) {
	release := m.quiesce()
	defer release()

	m.index.Lock()
	defer m.index.Unlock()
	m.reset()
	for i := range snap.Accounts {
		a := snap.Accounts[i]
		m.accounts[a.AccountID] = &a
		if a.Username != "" {
			m.usernames[a.Username] = a.AccountID
		}
	}
	for i := range snap.Listings {
		l := snap.Listings[i]
		m.listings[l.ListingID] = &l
	}
	offers := make([]domain.Offer, len(snap.Offers))
	copy(offers, snap.Offers)
	sort.SliceStable(offers, func(i, j int) bool { return offerLess(offers[i], offers[j]) })
	for i := range offers {
		o := offers[i]
		m.offers[o.OfferID] = &o
		m.offersByLi[o.ListingID] = append(m.offersByLi[o.ListingID], o.OfferID)
	}
	for i := range snap.Escrows {
		e := snap.Escrows[i]
		m.escrows[e.EscrowID] = &e
	}
}

func offerLess(a, b domain.Offer) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.OfferID < b.OfferID
}

func escrowLess(a, b domain.EscrowTransaction) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.EscrowID < b.EscrowID
}

// TotalFunds sums every account balance plus every amount still held in escrow.
// Operations never change it except for explicit top-ups and withdrawals.
func (m *Marketplace) TotalFunds() decimal.Decimal {
	release := m.quiesce()
	defer release()

	total := decimal.Zero
	for _, a := range m.accounts {
		total = total.Add(a.Balance)
	}
	for _, e := range m.escrows {
		if e.Status.IsPendingReview() {
			total = total.Add(e.Amount)
		}
	}
	return total
}
