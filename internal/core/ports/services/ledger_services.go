package services

import (
	"context"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/SscSPs/fastpay_escrow/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for accounts and balances
type LedgerReaderSvc interface {
	// GetAccount retrieves a specific account by its unique identifier.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByUsername retrieves an account by its login name.
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts, oldest first, plus the total count.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, int, error)
}

// LedgerWriterSvc defines balance-mutating operations
type LedgerWriterSvc interface {
	// Debit removes amount from an account.
	Debit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)

	// Credit adds amount to an account.
	Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)

	// Transfer moves amount between two accounts as one unit.
	Transfer(ctx context.Context, fromID string, req dto.TransferRequest) (*domain.Account, *domain.Account, error)
}

// AccountAdminSvc defines account lifecycle operations
type AccountAdminSvc interface {
	// OpenAccount registers a new account with a pre-hashed password.
	OpenAccount(ctx context.Context, username, displayName string, role domain.Role, passwordHash string) (*domain.Account, error)

	// SetAccountStatus suspends or reactivates an account.
	SetAccountStatus(ctx context.Context, actorID, accountID string, status domain.AccountStatus) (*domain.Account, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	AccountAdminSvc
}
