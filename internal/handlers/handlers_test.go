package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/adapters/memory"
	"github.com/SscSPs/fastpay_escrow/internal/adapters/notify"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/SscSPs/fastpay_escrow/internal/core/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/handlers"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	cfg    *config.Config
	router *gin.Engine

	adminToken  string
	sellerToken string
	buyerToken  string
	otherToken  string
	buyerID     string
	sellerID    string
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		StoreDriver:          config.StoreDriverMemory,
		IsProduction:         true,
		JWTSecret:            "handler-test-secret",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "test",
		TreasuryAccountID:    "treasury",
		PlatformFeeRate:      decimal.RequireFromString("0.01"),
		AllowApproveFromHeld: true,
		AdminUsername:        "root",
		AdminPassword:        "root-password",
		IdempotencyTTL:       time.Hour,
		LoginRateLimit:       "1000-M",
	}

	ctx := context.Background()
	m := services.NewMarketplace(suite.cfg)
	store := memory.NewSnapshotStore()
	notes := memory.NewNotificationStore()
	repos := portsrepo.RepositoryProvider{
		SnapshotRepo:     store,
		NotificationRepo: notes,
		IdempotencyRepo:  memory.NewIdempotencyStore(),
	}
	container, effects := services.NewServiceContainer(suite.cfg, m, repos, notify.NewRepositoryNotifier(notes))
	suite.Require().NoError(services.Bootstrap(ctx, suite.cfg, m, store, effects))

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slogDiscard()))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, container, repos.IdempotencyRepo))

	suite.adminToken = suite.login("root", "root-password")
	var seller, buyer dto.LoginResponse
	suite.sellerToken, seller = suite.registerAccount("seller01", "MERCHANT")
	suite.buyerToken, buyer = suite.registerAccount("buyer01", "USER")
	suite.otherToken, _ = suite.registerAccount("other01", "USER")
	suite.sellerID = seller.Account.AccountID
	suite.buyerID = buyer.Account.AccountID

	w := suite.do(http.MethodPost, "/api/v1/accounts/"+suite.buyerID+"/credit", suite.adminToken, gin.H{"amount": "500"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlersTestSuite) do(method, path, token string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlersTestSuite) login(username, password string) string {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": username, "password": password}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	return resp.Token
}

func (suite *HandlersTestSuite) registerAccount(username, role string) (string, dto.LoginResponse) {
	w := suite.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "password-123",
		"role":     role,
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	return resp.Token, resp
}

func (suite *HandlersTestSuite) createListing(price string, negotiable bool) dto.ListingResponse {
	w := suite.do(http.MethodPost, "/api/v1/listings", suite.sellerToken, gin.H{
		"title":      "Phone",
		"price":      price,
		"negotiable": negotiable,
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var l dto.ListingResponse
	suite.decode(w, &l)
	return l
}

func (suite *HandlersTestSuite) balanceOf(token string) decimal.Decimal {
	w := suite.do(http.MethodGet, "/api/v1/accounts/me", token, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var acc dto.AccountResponse
	suite.decode(w, &acc)
	return acc.Balance
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestAuthErrors() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "buyer01", "password": "wrong-password"}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "buyer01", "password": "password-123", "role": "USER"}, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "sneaky", "password": "password-123", "role": "ADMIN"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts/me", "", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts/me", "not-a-token", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestAdminRoutesRequireRole() {
	w := suite.do(http.MethodGet, "/api/v1/accounts", suite.sellerToken, nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/review-queue", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts", suite.adminToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListAccountsResponse
	suite.decode(w, &list)
	suite.Equal(5, list.Total)

	w = suite.do(http.MethodGet, "/api/v1/accounts/"+suite.sellerID, suite.buyerToken, nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestPurchaseProofApprove() {
	l := suite.createListing("300.00", false)

	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var tx dto.EscrowResponse
	suite.decode(w, &tx)
	suite.Equal(domain.EscrowHeld, tx.Status)
	suite.True(tx.Fee.Equal(decimal.NewFromInt(3)))
	suite.True(suite.balanceOf(suite.buyerToken).Equal(decimal.NewFromInt(200)))

	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.otherToken, nil, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/escrows/"+tx.EscrowID+"/proof", suite.buyerToken, gin.H{"proofRef": "TRACK-1"}, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/escrows/"+tx.EscrowID+"/proof", suite.sellerToken, gin.H{"proofRef": "TRACK-1"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &tx)
	suite.Equal(domain.EscrowFulfillmentPending, tx.Status)

	w = suite.do(http.MethodGet, "/api/v1/review-queue", suite.adminToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var queue dto.ListEscrowsResponse
	suite.decode(w, &queue)
	suite.Require().Len(queue.Escrows, 1)
	suite.Equal(tx.EscrowID, queue.Escrows[0].EscrowID)

	w = suite.do(http.MethodPost, "/api/v1/review-queue/"+tx.EscrowID+"/resolve", suite.adminToken, gin.H{"decision": "approve"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &tx)
	suite.Equal(domain.EscrowApproved, tx.Status)

	w = suite.do(http.MethodPost, "/api/v1/review-queue/"+tx.EscrowID+"/resolve", suite.adminToken, gin.H{"decision": "reject"}, nil)
	suite.Equal(http.StatusConflict, w.Code)

	suite.True(suite.balanceOf(suite.sellerToken).Equal(decimal.NewFromInt(297)))

	w = suite.do(http.MethodGet, "/api/v1/listings/"+l.ListingID, suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var listing dto.ListingResponse
	suite.decode(w, &listing)
	suite.Equal(domain.ListingCompleted, listing.Status)
}

func (suite *HandlersTestSuite) TestRejectRefundsAndRelists() {
	l := suite.createListing("120", false)
	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var tx dto.EscrowResponse
	suite.decode(w, &tx)

	w = suite.do(http.MethodPost, "/api/v1/review-queue/"+tx.EscrowID+"/resolve", suite.adminToken, gin.H{"decision": "reject", "notes": "not delivered"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.True(suite.balanceOf(suite.buyerToken).Equal(decimal.NewFromInt(500)))

	w = suite.do(http.MethodGet, "/api/v1/listings?status=ACTIVE", suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var listings dto.ListListingsResponse
	suite.decode(w, &listings)
	suite.Require().Len(listings.Listings, 1)
	suite.Equal(l.ListingID, listings.Listings[0].ListingID)
}

func (suite *HandlersTestSuite) TestBusinessErrorStatuses() {
	l := suite.createListing("900", false)
	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.sellerToken, nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/listings/missing/purchase", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/listings", suite.sellerToken, gin.H{"title": "Free", "price": "0"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/ledger/transfer", suite.buyerToken, gin.H{"toAccountID": suite.sellerID, "amount": "-5"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/offers", suite.buyerToken, gin.H{"amount": "800"}, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestEscrowVisibility() {
	l := suite.createListing("50", false)
	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var tx dto.EscrowResponse
	suite.decode(w, &tx)

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/escrows/"+tx.EscrowID, suite.buyerToken, nil, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/escrows/"+tx.EscrowID, suite.sellerToken, nil, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/escrows/"+tx.EscrowID, suite.adminToken, nil, nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/escrows/"+tx.EscrowID, suite.otherToken, nil, nil).Code)

	w = suite.do(http.MethodGet, "/api/v1/escrows", suite.otherToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListEscrowsResponse
	suite.decode(w, &list)
	suite.Empty(list.Escrows)

	w = suite.do(http.MethodGet, "/api/v1/escrows?nextToken=garbage", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestIdempotentPurchase() {
	l := suite.createListing("100", false)
	headers := map[string]string{middleware.IdempotencyKeyHeader: "purchase-1"}

	first := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, headers)
	suite.Require().Equal(http.StatusCreated, first.Code, first.Body.String())

	second := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, headers)
	suite.Equal(http.StatusCreated, second.Code)
	suite.Equal("true", second.Header().Get("Idempotent-Replayed"))
	suite.JSONEq(first.Body.String(), second.Body.String())
	suite.True(suite.balanceOf(suite.buyerToken).Equal(decimal.NewFromInt(400)))

	reused := suite.do(http.MethodPost, "/api/v1/ledger/transfer", suite.buyerToken, gin.H{"toAccountID": suite.sellerID, "amount": "1"}, headers)
	suite.Equal(http.StatusConflict, reused.Code)
}

func (suite *HandlersTestSuite) TestNegotiation() {
	l := suite.createListing("300", true)

	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/offers", suite.buyerToken, gin.H{"amount": "250"}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var offer dto.OfferResponse
	suite.decode(w, &offer)

	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/offers", suite.otherToken, gin.H{"amount": "260"}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/offers/"+offer.OfferID+"/accept", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/offers/"+offer.OfferID+"/accept", suite.sellerToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var accepted dto.AcceptOfferResponse
	suite.decode(w, &accepted)
	suite.Equal(domain.OfferAccepted, accepted.Accepted.Status)
	suite.Len(accepted.Rejected, 1)
	suite.True(accepted.Listing.Price.Equal(decimal.NewFromInt(250)))

	w = suite.do(http.MethodGet, "/api/v1/listings/"+l.ListingID+"/offers", suite.sellerToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var offers dto.ListOffersResponse
	suite.decode(w, &offers)
	suite.Len(offers.Offers, 2)
}

func (suite *HandlersTestSuite) TestModerationAndStatus() {
	l := suite.createListing("10", false)

	w := suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/moderate", suite.sellerToken, gin.H{"action": "block"}, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/moderate", suite.adminToken, gin.H{"action": "block"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = suite.do(http.MethodPost, "/api/v1/listings/"+l.ListingID+"/purchase", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/accounts/"+suite.buyerID+"/status", suite.adminToken, gin.H{"status": "SUSPENDED"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "buyer01", "password": "password-123"}, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestNotifications() {
	w := suite.do(http.MethodGet, "/api/v1/notifications", suite.buyerToken, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListNotificationsResponse
	suite.decode(w, &resp)
	suite.Require().NotEmpty(resp.Notifications)
	for _, n := range resp.Notifications {
		suite.Equal(suite.buyerID, n.AccountID)
	}

	w = suite.do(http.MethodPost, "/api/v1/notifications/"+resp.Notifications[0].NotificationID+"/read", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/notifications/missing/read", suite.buyerToken, nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
