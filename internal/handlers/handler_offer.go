package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offerHandler handles negotiation on negotiable listings.
type offerHandler struct {
	negotiationService portssvc.NegotiationSvcFacade
}

func newOfferHandler(ns portssvc.NegotiationSvcFacade) *offerHandler {
	return &offerHandler{negotiationService: ns}
}

func registerOfferRoutes(rg *gin.RouterGroup, negotiationService portssvc.NegotiationSvcFacade) {
	h := newOfferHandler(negotiationService)

	rg.POST("/listings/:listingID/offers", h.submitOffer)
	rg.GET("/listings/:listingID/offers", h.listOffers)

	offers := rg.Group("/offers")
	{
		offers.POST("/:offerID/accept", h.acceptOffer)
		offers.POST("/:offerID/reject", h.rejectOffer)
	}
}

// submitOffer godoc
// @Summary Make an offer
// @Description Submits a price offer on a negotiable ACTIVE listing
// @Tags offers
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param offer body dto.SubmitOfferRequest true "Offer amount"
// @Param Idempotency-Key header string false "Retry key"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 409 {object} map[string]string "Listing not negotiable or not active"
// @Security BearerAuth
// @Router /listings/{listingID}/offers [post]
func (h *offerHandler) submitOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	listingID := c.Param("listingID")

	var req dto.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitOffer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	buyerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	offer, err := h.negotiationService.SubmitOffer(c.Request.Context(), listingID, req, buyerID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit offer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

// listOffers godoc
// @Summary List offers on a listing
// @Tags offers
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} dto.ListOffersResponse
// @Failure 404 {object} map[string]string "Listing not found"
// @Security BearerAuth
// @Router /listings/{listingID}/offers [get]
func (h *offerHandler) listOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	offers, err := h.negotiationService.ListOffers(c.Request.Context(), c.Param("listingID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list offers")
		return
	}
	c.JSON(http.StatusOK, dto.ListOffersResponse{Offers: dto.ToOfferResponses(offers)})
}

// acceptOffer godoc
// @Summary Accept an offer
// @Description Accepts the offer, rejects every other pending offer and reprices the listing. Seller only.
// @Tags offers
// @Produce json
// @Param offerID path string true "Offer ID"
// @Success 200 {object} dto.AcceptOfferResponse
// @Failure 403 {object} map[string]string "Not the seller"
// @Failure 404 {object} map[string]string "Offer not found"
// @Failure 409 {object} map[string]string "Offer no longer pending"
// @Security BearerAuth
// @Router /offers/{offerID}/accept [post]
func (h *offerHandler) acceptOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res, err := h.negotiationService.AcceptOffer(c.Request.Context(), c.Param("offerID"), sellerID)
	if err != nil {
		respondError(c, logger, err, "Failed to accept offer")
		return
	}
	c.JSON(http.StatusOK, res)
}

// rejectOffer godoc
// @Summary Reject an offer
// @Tags offers
// @Produce json
// @Param offerID path string true "Offer ID"
// @Success 200 {object} dto.OfferResponse
// @Failure 403 {object} map[string]string "Not the seller"
// @Failure 404 {object} map[string]string "Offer not found"
// @Failure 409 {object} map[string]string "Offer no longer pending"
// @Security BearerAuth
// @Router /offers/{offerID}/reject [post]
func (h *offerHandler) rejectOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	offer, err := h.negotiationService.RejectOffer(c.Request.Context(), c.Param("offerID"), sellerID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}
