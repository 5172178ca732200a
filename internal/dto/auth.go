package dto

import (
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
)

// RegisterRequest opens a new account. Administrators are never self-registered.
type RegisterRequest struct {
	Username    string      `json:"username" binding:"required,min=3,max=50,alphanum" example:"merchant01"`
	Password    string      `json:"password" binding:"required,min=8,max=72" example:"s3cret-pass"`
	DisplayName string      `json:"displayName" binding:"max=100" example:"Riyadh Traders"`
	Role        domain.Role `json:"role" binding:"required,oneof=MERCHANT DISTRIBUTOR USER" example:"MERCHANT"`
}

// LoginRequest represents the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login or registration.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}
