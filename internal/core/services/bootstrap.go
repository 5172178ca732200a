package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/SscSPs/fastpay_escrow/internal/utils"
)

const treasuryUsername = "platform-treasury"

func domainPolicy(cfg *config.Config) domain.EscrowPolicy {
	return domain.EscrowPolicy{AllowApproveFromHeld: cfg.AllowApproveFromHeld}
}

// Bootstrap loads persisted state into m and makes sure the treasury account and
// the configured administrator exist. Anything it creates is persisted through effects.
func Bootstrap(ctx context.Context, cfg *config.Config, m *market.Marketplace, store portsrepo.SnapshotReader, effects *EffectRunner) error {
	logger := effects.GetLogger(ctx)

	if store != nil {
		snap, err := store.LoadSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to load marketplace state: %w", err)
		}
		m.Restore(*snap)
		logger.Info("Marketplace state loaded",
			slog.Int("accounts", len(snap.Accounts)),
			slog.Int("listings", len(snap.Listings)),
			slog.Int("offers", len(snap.Offers)),
			slog.Int("escrows", len(snap.Escrows)))
	}

	if cfg.TreasuryAccountID != "" {
		if _, err := m.Account(cfg.TreasuryAccountID); errors.Is(err, apperrors.ErrNotFound) {
			// The treasury has no password, so nobody can log in as it.
			_, fx, err := m.OpenAccount(market.NewAccount{
				AccountID:   cfg.TreasuryAccountID,
				Username:    treasuryUsername,
				DisplayName: "Platform treasury",
				Role:        domain.RoleAdmin,
				CreatedBy:   "system",
			})
			if err != nil {
				return fmt.Errorf("failed to create treasury account: %w", err)
			}
			effects.Run(ctx, fx)
			logger.Info("Treasury account created", slog.String("account_id", cfg.TreasuryAccountID))
		}
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, err := m.AccountByUsername(cfg.AdminUsername); errors.Is(err, apperrors.ErrNotFound) {
			hash, err := utils.HashPassword(cfg.AdminPassword)
			if err != nil {
				return fmt.Errorf("failed to hash administrator password: %w", err)
			}
			acc, fx, err := m.OpenAccount(market.NewAccount{
				Username:     cfg.AdminUsername,
				DisplayName:  "Administrator",
				Role:         domain.RoleAdmin,
				PasswordHash: hash,
				CreatedBy:    "system",
			})
			if err != nil {
				return fmt.Errorf("failed to create administrator: %w", err)
			}
			effects.Run(ctx, fx)
			logger.Info("Administrator account created", slog.String("account_id", acc.AccountID))
		}
	}
	return nil
}
