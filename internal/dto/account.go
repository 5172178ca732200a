package dto

import (
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account without the password hash.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	Username      string               `json:"username"`
	DisplayName   string               `json:"displayName"`
	Role          domain.Role          `json:"role"`
	Status        domain.AccountStatus `json:"status"`
	Balance       decimal.Decimal      `json:"balance"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Username:      acc.Username,
		DisplayName:   acc.DisplayName,
		Role:          acc.Role,
		Status:        acc.Status,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc) // Reuse the single converter
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// SetAccountStatusRequest suspends or reactivates an account.
type SetAccountStatusRequest struct {
	Status domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED" example:"SUSPENDED"`
}

// AmountRequest carries a positive amount for top-ups and withdrawals.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0" swaggertype:"string" example:"100.00"`
}

// TransferRequest moves funds from the caller to another account.
type TransferRequest struct {
	ToAccountID string          `json:"toAccountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0" swaggertype:"string" example:"25.50"`
}

// TransferResponse shows both accounts after a transfer.
type TransferResponse struct {
	From AccountResponse `json:"from"`
	To   AccountResponse `json:"to"`
}
