package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	market  *market.Marketplace
	effects *EffectRunner
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(m *market.Marketplace, effects *EffectRunner) portssvc.LedgerSvcFacade {
	return &ledgerService{market: m, effects: effects}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.market.Account(accountID)
	if err != nil {
		s.LogRejected(ctx, err, "Account lookup failed", slog.String("account_id", accountID))
		return nil, err
	}
	return &acc, nil
}

func (s *ledgerService) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	acc, err := s.market.AccountByUsername(username)
	if err != nil {
		s.LogRejected(ctx, err, "Account lookup by username failed", slog.String("username", username))
		return nil, err
	}
	return &acc, nil
}

// ListAccounts pages over every account, oldest first.
func (s *ledgerService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, int, error) {
	all := s.market.Accounts()
	total := len(all)
	if offset >= total {
		return []domain.Account{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("total", total), slog.Int("limit", limit), slog.Int("offset", offset))
	return all[offset:end], total, nil
}

func (s *ledgerService) Debit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	acc, effects, err := s.market.Debit(accountID, amount)
	if err != nil {
		s.LogRejected(ctx, err, "Debit rejected", slog.String("account_id", accountID), slog.String("amount", amount.String()))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Account debited", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return &acc, nil
}

func (s *ledgerService) Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	acc, effects, err := s.market.Credit(accountID, amount)
	if err != nil {
		s.LogRejected(ctx, err, "Credit rejected", slog.String("account_id", accountID), slog.String("amount", amount.String()))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Account credited", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return &acc, nil
}

func (s *ledgerService) Transfer(ctx context.Context, fromID string, req dto.TransferRequest) (*domain.Account, *domain.Account, error) {
	res, effects, err := s.market.Transfer(fromID, req.ToAccountID, req.Amount)
	if err != nil {
		s.LogRejected(ctx, err, "Transfer rejected",
			slog.String("from_account_id", fromID),
			slog.String("to_account_id", req.ToAccountID),
			slog.String("amount", req.Amount.String()))
		return nil, nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Transfer completed",
		slog.String("from_account_id", fromID),
		slog.String("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()))
	return &res.From, &res.To, nil
}

func (s *ledgerService) OpenAccount(ctx context.Context, username, displayName string, role domain.Role, passwordHash string) (*domain.Account, error) {
	acc, effects, err := s.market.OpenAccount(market.NewAccount{
		Username:     username,
		DisplayName:  displayName,
		Role:         role,
		PasswordHash: passwordHash,
	})
	if err != nil {
		s.LogRejected(ctx, err, "Account opening rejected", slog.String("username", username))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Account opened", slog.String("account_id", acc.AccountID), slog.String("role", string(acc.Role)))
	return &acc, nil
}

func (s *ledgerService) SetAccountStatus(ctx context.Context, actorID, accountID string, status domain.AccountStatus) (*domain.Account, error) {
	acc, effects, err := s.market.SetAccountStatus(actorID, accountID, status)
	if err != nil {
		s.LogRejected(ctx, err, "Account status change rejected",
			slog.String("actor_id", actorID),
			slog.String("account_id", accountID),
			slog.String("status", string(status)))
		return nil, err
	}
	s.effects.Run(ctx, effects)
	s.LogInfo(ctx, "Account status changed", slog.String("account_id", accountID), slog.String("status", string(status)))
	return &acc, nil
}
