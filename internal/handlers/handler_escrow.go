package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// escrowHandler handles purchases and the buyer/seller side of escrow transactions.
type escrowHandler struct {
	escrowService portssvc.EscrowSvcFacade
}

func newEscrowHandler(es portssvc.EscrowSvcFacade) *escrowHandler {
	return &escrowHandler{escrowService: es}
}

func registerEscrowRoutes(rg *gin.RouterGroup, escrowService portssvc.EscrowSvcFacade) {
	h := newEscrowHandler(escrowService)

	rg.POST("/listings/:listingID/purchase", h.purchase)

	escrows := rg.Group("/escrows")
	{
		escrows.GET("", h.listEscrows)
		escrows.GET("/:escrowID", h.getEscrow)
		escrows.POST("/:escrowID/proof", h.submitProof)
	}
}

// purchase godoc
// @Summary Buy a listing
// @Description Debits the buyer, holds the funds in escrow and marks the listing SOLD
// @Tags escrows
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param Idempotency-Key header string false "Retry key"
// @Success 201 {object} dto.EscrowResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Buyer suspended or buying own listing"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 409 {object} map[string]string "Listing not available"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /listings/{listingID}/purchase [post]
func (h *escrowHandler) purchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	listingID := c.Param("listingID")
	buyerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Buyer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("listing_id", listingID))
	tx, err := h.escrowService.Initiate(c.Request.Context(), listingID, buyerID)
	if err != nil {
		respondError(c, logger, err, "Failed to purchase listing")
		return
	}

	logger.Info("Purchase held in escrow", slog.String("escrow_id", tx.EscrowID))
	c.JSON(http.StatusCreated, dto.ToEscrowResponse(tx))
}

// listEscrows godoc
// @Summary List my escrow transactions
// @Description Lists transactions where the caller is buyer or seller, oldest first. Administrators see all.
// @Tags escrows
// @Produce json
// @Param status query string false "Escrow status"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEscrowsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /escrows [get]
func (h *escrowHandler) listEscrows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListEscrowsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEscrows", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txs, next, err := h.escrowService.ListEscrows(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list escrow transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEscrowsResponse(txs, next))
}

// getEscrow godoc
// @Summary Get an escrow transaction
// @Description Visible to its buyer, its seller and administrators
// @Tags escrows
// @Produce json
// @Param escrowID path string true "Escrow ID"
// @Success 200 {object} dto.EscrowResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Escrow not found"
// @Security BearerAuth
// @Router /escrows/{escrowID} [get]
func (h *escrowHandler) getEscrow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, err := h.escrowService.GetEscrow(c.Request.Context(), c.Param("escrowID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve escrow transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToEscrowResponse(tx))
}

// submitProof godoc
// @Summary Submit fulfillment proof
// @Description Seller attaches proof of delivery; the transaction moves to FULFILLMENT_PENDING
// @Tags escrows
// @Accept json
// @Produce json
// @Param escrowID path string true "Escrow ID"
// @Param proof body dto.SubmitProofRequest true "Proof reference"
// @Success 200 {object} dto.EscrowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the seller"
// @Failure 404 {object} map[string]string "Escrow not found"
// @Failure 409 {object} map[string]string "Escrow not in HELD state"
// @Security BearerAuth
// @Router /escrows/{escrowID}/proof [post]
func (h *escrowHandler) submitProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	escrowID := c.Param("escrowID")

	var req dto.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitProof", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, err := h.escrowService.SubmitProof(c.Request.Context(), escrowID, req, sellerID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit proof")
		return
	}
	c.JSON(http.StatusOK, dto.ToEscrowResponse(tx))
}
