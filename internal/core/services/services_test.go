package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/adapters/memory"
	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/core/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/SscSPs/fastpay_escrow/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() *config.Config {
	return &config.Config{
		StoreDriver:          config.StoreDriverMemory,
		JWTSecret:            "test-secret",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "test",
		TreasuryAccountID:    "treasury",
		PlatformFeeRate:      dec("0.01"),
		AllowApproveFromHeld: true,
		AdminUsername:        "root",
		AdminPassword:        "root-password",
	}
}

func testOptions() []market.Option {
	var ticks, ids int64
	return []market.Option{
		market.WithClock(func() time.Time {
			return testEpoch.Add(time.Duration(atomic.AddInt64(&ticks, 1)) * time.Second)
		}),
		market.WithIDGenerator(func() string {
			return fmt.Sprintf("id-%04d", atomic.AddInt64(&ids, 1))
		}),
	}
}

type MarketplaceServicesTestSuite struct {
	suite.Suite
	ctx       context.Context
	cfg       *config.Config
	market    *market.Marketplace
	store     *memory.SnapshotStore
	notes     *memory.NotificationStore
	notifier  *recordingNotifier
	container *portssvc.ServiceContainer
	effects   *services.EffectRunner

	admin  *domain.Account
	seller *domain.Account
	buyer  *domain.Account
}

func (suite *MarketplaceServicesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cfg = testConfig()
	suite.market = services.NewMarketplace(suite.cfg, testOptions()...)
	suite.store = memory.NewSnapshotStore()
	suite.notes = memory.NewNotificationStore()
	suite.notifier = &recordingNotifier{}

	repos := portsrepo.RepositoryProvider{SnapshotRepo: suite.store, NotificationRepo: suite.notes}
	suite.container, suite.effects = services.NewServiceContainer(suite.cfg, suite.market, repos, suite.notifier)
	suite.Require().NoError(services.Bootstrap(suite.ctx, suite.cfg, suite.market, suite.store, suite.effects))

	admin, err := suite.container.Ledger.GetAccountByUsername(suite.ctx, "root")
	suite.Require().NoError(err)
	suite.admin = admin
	suite.seller = suite.register("seller01", domain.RoleMerchant)
	suite.buyer = suite.register("buyer01", domain.RoleUser)
	_, err = suite.container.Ledger.Credit(suite.ctx, suite.buyer.AccountID, dec("500"))
	suite.Require().NoError(err)
}

func (suite *MarketplaceServicesTestSuite) register(username string, role domain.Role) *domain.Account {
	acc, token, _, err := suite.container.Auth.Register(suite.ctx, dto.RegisterRequest{
		Username: username,
		Password: "password-123",
		Role:     role,
	})
	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)
	return acc
}

func (suite *MarketplaceServicesTestSuite) listing(price string, negotiable bool) *domain.Listing {
	l, err := suite.container.Listing.CreateListing(suite.ctx, dto.CreateListingRequest{
		Title:      "Phone",
		Price:      dec(price),
		Negotiable: negotiable,
	}, suite.seller.AccountID)
	suite.Require().NoError(err)
	return l
}

func (suite *MarketplaceServicesTestSuite) balance(accountID string) decimal.Decimal {
	acc, err := suite.container.Ledger.GetAccount(suite.ctx, accountID)
	suite.Require().NoError(err)
	return acc.Balance
}

func (suite *MarketplaceServicesTestSuite) TestBootstrap_CreatesTreasuryAndAdminOnce() {
	treasury, err := suite.container.Ledger.GetAccount(suite.ctx, "treasury")
	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, treasury.Role)
	suite.Equal(domain.RoleAdmin, suite.admin.Role)

	before := len(suite.market.Accounts())
	suite.Require().NoError(services.Bootstrap(suite.ctx, suite.cfg, suite.market, suite.store, suite.effects))
	suite.Len(suite.market.Accounts(), before)
}

func (suite *MarketplaceServicesTestSuite) TestBootstrap_RestoresPersistedState() {
	l := suite.listing("300", false)
	_, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
	suite.Require().NoError(err)

	fresh := services.NewMarketplace(suite.cfg)
	runner := services.NewEffectRunner(fresh, nil, nil)
	suite.Require().NoError(services.Bootstrap(suite.ctx, suite.cfg, fresh, suite.store, runner))

	restored, err := fresh.Listing(l.ListingID)
	suite.Require().NoError(err)
	suite.Equal(domain.ListingSold, restored.Status)
	suite.Len(fresh.PendingReview(), 1)
	suite.True(fresh.TotalFunds().Equal(suite.market.TotalFunds()))
}

func (suite *MarketplaceServicesTestSuite) TestPurchaseApproveWithFee() {
	l := suite.listing("300", false)

	tx, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
	suite.Require().NoError(err)
	suite.Equal(domain.EscrowHeld, tx.Status)
	suite.True(tx.Fee.Equal(dec("3")))
	suite.True(suite.balance(suite.buyer.AccountID).Equal(dec("200")))

	tx, err = suite.container.Escrow.SubmitProof(suite.ctx, tx.EscrowID, dto.SubmitProofRequest{ProofRef: "TRACK-001"}, suite.seller.AccountID)
	suite.Require().NoError(err)
	suite.Equal(domain.EscrowFulfillmentPending, tx.Status)

	pending, err := suite.container.ReviewQueue.ListPending(suite.ctx, suite.admin.AccountID)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	tx, err = suite.container.ReviewQueue.Resolve(suite.ctx, tx.EscrowID, dto.ResolveEscrowRequest{Decision: domain.DecisionApprove, Notes: "ok"}, suite.admin.AccountID)
	suite.Require().NoError(err)
	suite.Equal(domain.EscrowApproved, tx.Status)
	suite.True(suite.balance(suite.seller.AccountID).Equal(dec("297")))
	suite.True(suite.balance("treasury").Equal(dec("3")))

	listing, err := suite.container.Listing.GetListing(suite.ctx, l.ListingID)
	suite.Require().NoError(err)
	suite.Equal(domain.ListingCompleted, listing.Status)

	_, err = suite.container.ReviewQueue.Resolve(suite.ctx, tx.EscrowID, dto.ResolveEscrowRequest{Decision: domain.DecisionReject}, suite.admin.AccountID)
	suite.ErrorIs(err, apperrors.ErrAlreadyResolved)

	suite.Contains(suite.notifier.titlesFor(suite.seller.AccountID), "New order")
	suite.Contains(suite.notifier.titlesFor(""), "Escrow opened")

	loaded, err := suite.store.LoadSnapshot(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Escrows, 1)
	suite.Equal(domain.EscrowApproved, loaded.Escrows[0].Status, "the store holds the state after the last transition")
}

func (suite *MarketplaceServicesTestSuite) TestPurchaseRejectRefunds() {
	l := suite.listing("120.50", false)
	tx, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
	suite.Require().NoError(err)

	tx, err = suite.container.Escrow.Reject(suite.ctx, tx.EscrowID, suite.admin.AccountID, "no proof")
	suite.Require().NoError(err)
	suite.Equal(domain.EscrowRejected, tx.Status)
	suite.True(suite.balance(suite.buyer.AccountID).Equal(dec("500")))

	listing, _ := suite.container.Listing.GetListing(suite.ctx, l.ListingID)
	suite.Equal(domain.ListingActive, listing.Status)
}

func (suite *MarketplaceServicesTestSuite) TestReviewQueue_AdminOnly() {
	_, err := suite.container.ReviewQueue.ListPending(suite.ctx, suite.buyer.AccountID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.container.ReviewQueue.ListPending(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MarketplaceServicesTestSuite) TestGetEscrow_Visibility() {
	l := suite.listing("50", false)
	tx, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
	suite.Require().NoError(err)

	for _, id := range []string{suite.buyer.AccountID, suite.seller.AccountID, suite.admin.AccountID} {
		got, err := suite.container.Escrow.GetEscrow(suite.ctx, tx.EscrowID, id)
		suite.Require().NoError(err)
		suite.Equal(tx.EscrowID, got.EscrowID)
	}

	stranger := suite.register("stranger", domain.RoleDistributor)
	_, err = suite.container.Escrow.GetEscrow(suite.ctx, tx.EscrowID, stranger.AccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MarketplaceServicesTestSuite) TestListEscrows_Paginates() {
	_, err := suite.container.Ledger.Credit(suite.ctx, suite.buyer.AccountID, dec("1000"))
	suite.Require().NoError(err)
	var ids []string
	for i := 0; i < 5; i++ {
		l := suite.listing("10", false)
		tx, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
		suite.Require().NoError(err)
		ids = append(ids, tx.EscrowID)
	}

	var seen []string
	token := ""
	pages := 0
	for {
		page, next, err := suite.container.Escrow.ListEscrows(suite.ctx, suite.buyer.AccountID, dto.ListEscrowsParams{Limit: 2, NextToken: token})
		suite.Require().NoError(err)
		for _, tx := range page {
			seen = append(seen, tx.EscrowID)
		}
		pages++
		if next == "" {
			break
		}
		token = next
	}
	suite.Equal(ids, seen)
	suite.Equal(3, pages)

	_, _, err = suite.container.Escrow.ListEscrows(suite.ctx, suite.buyer.AccountID, dto.ListEscrowsParams{Limit: 2, NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	stranger := suite.register("stranger", domain.RoleUser)
	none, _, err := suite.container.Escrow.ListEscrows(suite.ctx, stranger.AccountID, dto.ListEscrowsParams{Limit: 10})
	suite.Require().NoError(err)
	suite.Empty(none)

	all, _, err := suite.container.Escrow.ListEscrows(suite.ctx, suite.admin.AccountID, dto.ListEscrowsParams{Limit: 10})
	suite.Require().NoError(err)
	suite.Len(all, 5)
}

func (suite *MarketplaceServicesTestSuite) TestNegotiationFlow() {
	l := suite.listing("300", true)
	other := suite.register("buyer02", domain.RoleUser)

	low, err := suite.container.Negotiation.SubmitOffer(suite.ctx, l.ListingID, dto.SubmitOfferRequest{Amount: dec("250")}, suite.buyer.AccountID)
	suite.Require().NoError(err)
	_, err = suite.container.Negotiation.SubmitOffer(suite.ctx, l.ListingID, dto.SubmitOfferRequest{Amount: dec("260")}, other.AccountID)
	suite.Require().NoError(err)

	_, err = suite.container.Negotiation.AcceptOffer(suite.ctx, low.OfferID, suite.buyer.AccountID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	res, err := suite.container.Negotiation.AcceptOffer(suite.ctx, low.OfferID, suite.seller.AccountID)
	suite.Require().NoError(err)
	suite.Equal(domain.OfferAccepted, res.Accepted.Status)
	suite.Len(res.Rejected, 1)
	suite.True(res.Listing.Price.Equal(dec("250")))

	offers, err := suite.container.Negotiation.ListOffers(suite.ctx, l.ListingID)
	suite.Require().NoError(err)
	suite.Len(offers, 2)

	_, err = suite.container.Listing.RepriceListing(suite.ctx, l.ListingID, dto.RepriceListingRequest{Price: dec("100")}, suite.seller.AccountID)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *MarketplaceServicesTestSuite) TestLedgerTransferAndStatus() {
	from, to, err := suite.container.Ledger.Transfer(suite.ctx, suite.buyer.AccountID, dto.TransferRequest{ToAccountID: suite.seller.AccountID, Amount: dec("100")})
	suite.Require().NoError(err)
	suite.True(from.Balance.Equal(dec("400")))
	suite.True(to.Balance.Equal(dec("100")))

	_, _, err = suite.container.Ledger.Transfer(suite.ctx, suite.buyer.AccountID, dto.TransferRequest{ToAccountID: suite.seller.AccountID, Amount: dec("1000")})
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = suite.container.Ledger.SetAccountStatus(suite.ctx, suite.seller.AccountID, suite.buyer.AccountID, domain.AccountSuspended)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	acc, err := suite.container.Ledger.SetAccountStatus(suite.ctx, suite.admin.AccountID, suite.buyer.AccountID, domain.AccountSuspended)
	suite.Require().NoError(err)
	suite.Equal(domain.AccountSuspended, acc.Status)

	_, err = suite.container.Ledger.Debit(suite.ctx, suite.buyer.AccountID, dec("1"))
	suite.ErrorIs(err, apperrors.ErrForbidden)

	page, total, err := suite.container.Ledger.ListAccounts(suite.ctx, 2, 1)
	suite.Require().NoError(err)
	suite.Equal(4, total)
	suite.Len(page, 2)

	page, _, err = suite.container.Ledger.ListAccounts(suite.ctx, 2, 10)
	suite.Require().NoError(err)
	suite.Empty(page)
}

func (suite *MarketplaceServicesTestSuite) TestAuth() {
	_, token, expiresAt, err := suite.container.Auth.Login(suite.ctx, dto.LoginRequest{Username: "seller01", Password: "password-123"})
	suite.Require().NoError(err)
	suite.True(expiresAt.After(time.Now()))
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(suite.seller.AccountID, claims.Subject)
	suite.Equal(string(domain.RoleMerchant), claims.Role)

	_, _, _, err = suite.container.Auth.Login(suite.ctx, dto.LoginRequest{Username: "seller01", Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, _, _, err = suite.container.Auth.Login(suite.ctx, dto.LoginRequest{Username: "ghost", Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	// The treasury has no password and can never log in.
	_, _, _, err = suite.container.Auth.Login(suite.ctx, dto.LoginRequest{Username: "platform-treasury", Password: ""})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, _, _, err = suite.container.Auth.Register(suite.ctx, dto.RegisterRequest{Username: "seller01", Password: "password-123", Role: domain.RoleUser})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, _, _, err = suite.container.Auth.Register(suite.ctx, dto.RegisterRequest{Username: "sneaky", Password: "password-123", Role: domain.RoleAdmin})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.container.Ledger.SetAccountStatus(suite.ctx, suite.admin.AccountID, suite.seller.AccountID, domain.AccountSuspended)
	suite.Require().NoError(err)
	_, _, _, err = suite.container.Auth.Login(suite.ctx, dto.LoginRequest{Username: "seller01", Password: "password-123"})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MarketplaceServicesTestSuite) TestNotificationInbox() {
	l := suite.listing("40", false)
	_, err := suite.container.Escrow.Initiate(suite.ctx, l.ListingID, suite.buyer.AccountID)
	suite.Require().NoError(err)

	// Notifications reach the inbox only through a repository notifier; feed it directly.
	for _, n := range suite.notifier.sent {
		suite.Require().NoError(suite.notes.SaveNotification(suite.ctx, n))
	}

	own, err := suite.container.Notification.ListNotifications(suite.ctx, suite.buyer.AccountID, dto.ListNotificationsParams{Limit: 50})
	suite.Require().NoError(err)
	suite.NotEmpty(own)
	for _, n := range own {
		suite.Equal(suite.buyer.AccountID, n.AccountID)
	}

	adminView, err := suite.container.Notification.ListNotifications(suite.ctx, suite.admin.AccountID, dto.ListNotificationsParams{Limit: 50})
	suite.Require().NoError(err)
	hasBroadcast := false
	for _, n := range adminView {
		if n.AccountID == "" {
			hasBroadcast = true
		}
	}
	suite.True(hasBroadcast)

	suite.Require().NoError(suite.container.Notification.MarkRead(suite.ctx, suite.buyer.AccountID, own[0].NotificationID))
	err = suite.container.Notification.MarkRead(suite.ctx, suite.buyer.AccountID, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMarketplaceServicesTestSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceServicesTestSuite))
}
