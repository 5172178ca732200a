package market_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// TestFundsAreConserved drives random operation sequences and checks that the
// sum of balances plus held escrow never changes.
func TestFundsAreConserved(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("balances plus held escrow stay constant", prop.ForAll(
		func(ops []int, feeBasisPoints int) bool {
			m := newTestMarketplace(market.Config{
				TreasuryAccountID: treasuryID,
				FeeRate:           decimal.New(int64(feeBasisPoints), -4),
				Policy:            domain.EscrowPolicy{AllowApproveFromHeld: feeBasisPoints%2 == 0},
			})
			if _, _, err := m.OpenAccount(market.NewAccount{AccountID: treasuryID, Username: "treasury", Role: domain.RoleAdmin}); err != nil {
				return false
			}
			admin, _, _ := m.OpenAccount(market.NewAccount{Username: "admin", Role: domain.RoleAdmin})
			var users []domain.Account
			for i := 0; i < 4; i++ {
				acc, _, err := m.OpenAccount(market.NewAccount{
					Username:       fmt.Sprintf("user%d", i),
					Role:           domain.RoleUser,
					OpeningBalance: decimal.NewFromInt(int64(100 * (i + 1))),
				})
				if err != nil {
					return false
				}
				users = append(users, acc)
			}
			var listings []string
			for i, seller := range users {
				l, _, err := m.CreateListing(market.NewListing{
					SellerID:   seller.AccountID,
					Title:      fmt.Sprintf("item %d", i),
					Price:      decimal.New(int64(2550*(i+1)), -2),
					Negotiable: i%2 == 0,
				})
				if err != nil {
					return false
				}
				listings = append(listings, l.ListingID)
			}
			want := m.TotalFunds()

			var escrows, offers []string
			for _, v := range ops {
				pick := v / 7
				user := users[pick%len(users)].AccountID
				switch v % 7 {
				case 0:
					if tx, _, err := m.Initiate(listings[pick%len(listings)], user); err == nil {
						escrows = append(escrows, tx.EscrowID)
					}
				case 1:
					if len(escrows) > 0 {
						tx, _ := m.Escrow(escrows[pick%len(escrows)])
						_, _, _ = m.SubmitProof(tx.EscrowID, tx.SellerID, "TRACK")
					}
				case 2:
					if len(escrows) > 0 {
						_, _, _ = m.Approve(escrows[pick%len(escrows)], admin.AccountID, "")
					}
				case 3:
					if len(escrows) > 0 {
						_, _, _ = m.Reject(escrows[pick%len(escrows)], admin.AccountID, "")
					}
				case 4:
					to := users[(pick+1)%len(users)].AccountID
					_, _, _ = m.Transfer(user, to, decimal.NewFromInt(int64(pick%60+1)))
				case 5:
					if o, _, err := m.SubmitOffer(listings[pick%len(listings)], user, decimal.NewFromInt(int64(pick%40+5))); err == nil {
						offers = append(offers, o.OfferID)
					}
				case 6:
					if len(offers) > 0 {
						o, _ := m.Offer(offers[pick%len(offers)])
						l, _ := m.Listing(o.ListingID)
						_, _, _ = m.AcceptOffer(l.SellerID, o.OfferID)
					}
				}
				if !m.TotalFunds().Equal(want) {
					return false
				}
			}
			for _, acc := range m.Accounts() {
				if acc.Balance.IsNegative() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 699)),
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}

// TestConcurrentDebitsNeverOverdraw checks that racing debits succeed exactly
// as often as the balance allows.
func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("successes == min(attempts, balance / amount)", prop.ForAll(
		func(balance, amount, attempts int) bool {
			m := newTestMarketplace(market.Config{})
			acc, _, err := m.OpenAccount(market.NewAccount{
				Username:       "spender",
				Role:           domain.RoleUser,
				OpeningBalance: decimal.NewFromInt(int64(balance)),
			})
			if err != nil {
				return false
			}

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				otherErr  bool
			)
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _, err := m.Debit(acc.AccountID, decimal.NewFromInt(int64(amount)))
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case !errors.Is(err, apperrors.ErrInsufficientFunds):
						otherErr = true
					}
				}()
			}
			wg.Wait()

			expected := balance / amount
			if attempts < expected {
				expected = attempts
			}
			final, _ := m.Account(acc.AccountID)
			left := decimal.NewFromInt(int64(balance - successes*amount))
			return !otherErr && successes == expected && final.Balance.Equal(left)
		},
		gen.IntRange(0, 1000),
		gen.IntRange(1, 100),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
