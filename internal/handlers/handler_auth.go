package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. loginLimit guards
// the login endpoint against credential stuffing.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		if loginLimit != nil {
			auth.POST("/login", loginLimit, h.login)
		} else {
			auth.POST("/login", h.login)
		}
	}
}

// register godoc
// @Summary Register a new account
// @Description Opens a merchant, distributor or user account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Administrator accounts cannot self-register"
// @Failure 409 {object} ErrorResponse "Username taken"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	acc, token, expiresAt, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register account")
		return
	}

	logger.Info("Account registered", slog.String("account_id", acc.AccountID))
	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountResponse(acc),
	})
}

// login godoc
// @Summary Log in
// @Description Authenticates an account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account suspended"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	acc, token, expiresAt, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountResponse(acc),
	})
}
