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

// listingHandler handles HTTP requests related to listings.
type listingHandler struct {
	listingService portssvc.ListingSvcFacade
}

func newListingHandler(ls portssvc.ListingSvcFacade) *listingHandler {
	return &listingHandler{listingService: ls}
}

// registerListingRoutes registers routes related to listings.
func registerListingRoutes(rg *gin.RouterGroup, listingService portssvc.ListingSvcFacade) {
	h := newListingHandler(listingService)

	listings := rg.Group("/listings")
	{
		listings.POST("", h.createListing)
		listings.GET("", h.listListings)
		listings.GET("/:listingID", h.getListing)
		listings.PUT("/:listingID/price", h.repriceListing)
		listings.POST("/:listingID/moderate", middleware.RequireRole(string(domain.RoleAdmin)), h.moderateListing)
	}
}

// createListing godoc
// @Summary Post a listing
// @Description Creates an ACTIVE listing owned by the caller
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body dto.CreateListingRequest true "Listing details"
// @Param Idempotency-Key header string false "Retry key"
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Seller account not found"
// @Security BearerAuth
// @Router /listings [post]
func (h *listingHandler) createListing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateListing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Seller ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), req, sellerID)
	if err != nil {
		respondError(c, logger, err, "Failed to create listing")
		return
	}

	logger.Info("Listing created successfully", slog.String("listing_id", listing.ListingID))
	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

// listListings godoc
// @Summary List listings
// @Description Lists listings, optionally filtered by status, seller or category
// @Tags listings
// @Produce json
// @Param status query string false "Listing status"
// @Param sellerID query string false "Seller account ID"
// @Param category query string false "Category"
// @Success 200 {object} dto.ListListingsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /listings [get]
func (h *listingHandler) listListings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListListingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	listings, err := h.listingService.ListListings(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list listings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListListingsResponse(listings))
}

// getListing godoc
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} map[string]string "Listing not found"
// @Security BearerAuth
// @Router /listings/{listingID} [get]
func (h *listingHandler) getListing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	listing, err := h.listingService.GetListing(c.Request.Context(), c.Param("listingID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve listing")
		return
	}
	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// repriceListing godoc
// @Summary Change a listing's price
// @Description Only the seller may reprice, and only while the listing is not sold
// @Tags listings
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param price body dto.RepriceListingRequest true "New price"
// @Success 200 {object} dto.ListingResponse
// @Failure 400 {object} map[string]string "Invalid price"
// @Failure 403 {object} map[string]string "Not the seller"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 409 {object} map[string]string "Listing no longer repriceable"
// @Security BearerAuth
// @Router /listings/{listingID}/price [put]
func (h *listingHandler) repriceListing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	listingID := c.Param("listingID")

	var req dto.RepriceListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RepriceListing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listing, err := h.listingService.RepriceListing(c.Request.Context(), listingID, req, sellerID)
	if err != nil {
		respondError(c, logger, err, "Failed to reprice listing")
		return
	}
	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// moderateListing godoc
// @Summary Moderate a listing
// @Description Suspends, blocks or reactivates a listing. Administrators only.
// @Tags listings
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param action body dto.ModerateListingRequest true "Moderation action"
// @Success 200 {object} dto.ListingResponse
// @Failure 400 {object} map[string]string "Invalid action"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /listings/{listingID}/moderate [post]
func (h *listingHandler) moderateListing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	listingID := c.Param("listingID")

	var req dto.ModerateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listing, err := h.listingService.ModerateListing(c.Request.Context(), listingID, req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to moderate listing")
		return
	}
	logger.Info("Listing moderated", slog.String("listing_id", listingID), slog.String("action", string(req.Action)))
	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}
