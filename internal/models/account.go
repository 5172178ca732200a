package models

import (
	"github.com/shopspring/decimal"
)

// Account is the row stored in the accounts table.
type Account struct {
	AccountID    string          `db:"account_id"`
	Username     string          `db:"username"`
	DisplayName  string          `db:"display_name"`
	Role         string          `db:"role"`
	Status       string          `db:"status"`
	Balance      decimal.Decimal `db:"balance"`
	PasswordHash string          `db:"password_hash"`
	AuditFields
}
