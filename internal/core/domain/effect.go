package domain

import "time"

// Collection names one of the persisted entity collections.
type Collection string

const (
	CollectionAccounts Collection = "accounts"
	CollectionListings Collection = "listings"
	CollectionOffers   Collection = "offers"
	CollectionEscrows  Collection = "escrow_transactions"
)

// AllCollections lists every persisted collection.
var AllCollections = []Collection{CollectionAccounts, CollectionListings, CollectionOffers, CollectionEscrows}

// EffectKind tells the effect runner what to do.
type EffectKind string

const (
	EffectPersist EffectKind = "PERSIST"
	EffectNotify  EffectKind = "NOTIFY"
)

// Effect is a side effect requested by a state transition. Transitions never
// perform I/O themselves; callers execute the returned effects after success.
type Effect struct {
	Kind         EffectKind
	Collections  []Collection
	Notification *Notification
}

// PersistEffect asks for the given collections to be written out.
func PersistEffect(collections ...Collection) Effect {
	return Effect{Kind: EffectPersist, Collections: collections}
}

// NotifyEffect asks for a notification to be delivered.
func NotifyEffect(n Notification) Effect {
	return Effect{Kind: EffectNotify, Notification: &n}
}

// Snapshot is the full state of every collection at one instant.
type Snapshot struct {
	Accounts []Account
	Listings []Listing
	Offers   []Offer
	Escrows  []EscrowTransaction
	TakenAt  time.Time
}
