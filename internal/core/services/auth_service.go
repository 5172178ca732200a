package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/SscSPs/fastpay_escrow/internal/utils"
)

// authService issues access tokens for registered accounts.
type authService struct {
	BaseService
	cfg    *config.Config
	ledger portssvc.LedgerSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, ledger portssvc.LedgerSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, ledger: ledger}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, string, time.Time, error) {
	if req.Role == domain.RoleAdmin {
		return nil, "", time.Time{}, fmt.Errorf("%w: administrators cannot self-register", apperrors.ErrForbidden)
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", req.Username))
		return nil, "", time.Time{}, fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}

	acc, err := s.ledger.OpenAccount(ctx, req.Username, req.DisplayName, req.Role, hash)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateAccessToken(ctx, acc)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return acc, token, expiresAt, nil
}

// Login never reveals whether the username or the password was wrong.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, string, time.Time, error) {
	acc, err := s.ledger.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, "", time.Time{}, err
	}
	if acc.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, acc.PasswordHash) {
		s.LogInfo(ctx, "Login failed", slog.String("username", req.Username))
		return nil, "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	if !acc.IsActive() {
		return nil, "", time.Time{}, fmt.Errorf("%w: account %s is suspended", apperrors.ErrForbidden, acc.AccountID)
	}

	token, expiresAt, err := s.GenerateAccessToken(ctx, acc)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.LogInfo(ctx, "Login succeeded", slog.String("account_id", acc.AccountID))
	return acc, token, expiresAt, nil
}

// GenerateAccessToken creates a new JWT access token for the given account.
func (s *authService) GenerateAccessToken(ctx context.Context, acc *domain.Account) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(acc.AccountID, string(acc.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("account_id", acc.AccountID))
		return "", time.Time{}, fmt.Errorf("%w: failed to generate access token", apperrors.ErrInternal)
	}
	return token, expiresAt, nil
}
