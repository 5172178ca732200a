package services

import (
	"context"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
)

// AuthSvcFacade handles registration, login and access tokens.
type AuthSvcFacade interface {
	// Register opens a new account and returns it with an access token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, string, time.Time, error)

	// Login verifies credentials and returns the account with an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, string, time.Time, error)

	// GenerateAccessToken issues a signed token for the account.
	GenerateAccessToken(ctx context.Context, acc *domain.Account) (string, time.Time, error)
}
