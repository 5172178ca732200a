package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts and balances.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		ledgerService: ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/me", h.getMe)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("", adminOnly, h.listAccounts)
		accounts.POST("/:accountID/status", adminOnly, h.setAccountStatus)
		accounts.POST("/:accountID/credit", adminOnly, h.creditAccount)
	}

	rg.POST("/ledger/transfer", h.transfer)
}

// getMe godoc
// @Summary Get the logged-in account
// @Description Returns the caller's account including its balance
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/me [get]
func (h *accountHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	acc, err := h.ledgerService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account. Non-administrators may only read their own.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (accessing another account)"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, _ := middleware.GetRoleFromContext(c)
	if accountID != userID && role != string(domain.RoleAdmin) {
		logger.Warn("Account read forbidden", slog.String("target_account_id", accountID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	acc, err := h.ledgerService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves a page of accounts, oldest first. Administrators only.
// @Tags accounts
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, total, err := h.ledgerService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToListAccountResponse(accounts),
		Total:    total,
	})
}

// setAccountStatus godoc
// @Summary Suspend or reactivate an account
// @Description Suspended accounts cannot be debited or log in. Administrators only.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param status body dto.SetAccountStatusRequest true "New status"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/status [post]
func (h *accountHandler) setAccountStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.SetAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetAccountStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	acc, err := h.ledgerService.SetAccountStatus(c.Request.Context(), actorID, accountID, req.Status)
	if err != nil {
		respondError(c, logger, err, "Failed to change account status")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// creditAccount godoc
// @Summary Top up an account
// @Description Credits an account with funds received outside the platform. Administrators only.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param amount body dto.AmountRequest true "Amount to credit"
// @Param Idempotency-Key header string false "Retry key"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/credit [post]
func (h *accountHandler) creditAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreditAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	acc, err := h.ledgerService.Credit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to credit account")
		return
	}
	logger.Info("Account credited", slog.String("account_id", accountID), slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// transfer godoc
// @Summary Transfer funds
// @Description Moves funds from the caller's account to another account as one unit
// @Tags ledger
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Param Idempotency-Key header string false "Retry key"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /ledger/transfer [post]
func (h *accountHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, err := h.ledgerService.Transfer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer funds")
		return
	}
	c.JSON(http.StatusOK, dto.TransferResponse{
		From: dto.ToAccountResponse(from),
		To:   dto.ToAccountResponse(to),
	})
}
