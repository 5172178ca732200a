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

// reviewQueueHandler exposes the administrators' escrow review queue.
type reviewQueueHandler struct {
	reviewQueue portssvc.ReviewQueueSvc
}

func newReviewQueueHandler(rq portssvc.ReviewQueueSvc) *reviewQueueHandler {
	return &reviewQueueHandler{reviewQueue: rq}
}

func registerReviewQueueRoutes(rg *gin.RouterGroup, reviewQueue portssvc.ReviewQueueSvc) {
	h := newReviewQueueHandler(reviewQueue)

	queue := rg.Group("/review-queue", middleware.RequireRole(string(domain.RoleAdmin)))
	{
		queue.GET("", h.listPending)
		queue.POST("/:escrowID/resolve", h.resolve)
	}
}

// listPending godoc
// @Summary List escrow transactions awaiting review
// @Description Returns HELD and FULFILLMENT_PENDING transactions, oldest first
// @Tags review-queue
// @Produce json
// @Success 200 {object} dto.ListEscrowsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /review-queue [get]
func (h *reviewQueueHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pending, err := h.reviewQueue.ListPending(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to list review queue")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEscrowsResponse(pending, ""))
}

// resolve godoc
// @Summary Resolve an escrow transaction
// @Description Approve releases the funds to the seller minus the platform fee; reject refunds the buyer
// @Tags review-queue
// @Accept json
// @Produce json
// @Param escrowID path string true "Escrow ID"
// @Param decision body dto.ResolveEscrowRequest true "Decision"
// @Param Idempotency-Key header string false "Retry key"
// @Success 200 {object} dto.EscrowResponse
// @Failure 400 {object} map[string]string "Invalid decision"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Escrow not found"
// @Failure 409 {object} map[string]string "Already resolved or not yet approvable"
// @Security BearerAuth
// @Router /review-queue/{escrowID}/resolve [post]
func (h *reviewQueueHandler) resolve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	escrowID := c.Param("escrowID")

	var req dto.ResolveEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveEscrow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, err := h.reviewQueue.Resolve(c.Request.Context(), escrowID, req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve escrow transaction")
		return
	}
	logger.Info("Escrow transaction resolved", slog.String("escrow_id", escrowID), slog.String("status", string(tx.Status)))
	c.JSON(http.StatusOK, dto.ToEscrowResponse(tx))
}
