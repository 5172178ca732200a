package domain

import (
	"github.com/shopspring/decimal"
)

// Role defines what an account is allowed to do on the platform.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleMerchant    Role = "MERCHANT"
	RoleDistributor Role = "DISTRIBUTOR"
	RoleUser        Role = "USER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMerchant, RoleDistributor, RoleUser:
		return true
	}
	return false
}

// AccountStatus is the lifecycle status of an account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// Account represents a party able to hold a balance.
// Balance is only ever mutated through the ledger.
type Account struct {
	AccountID    string          `json:"accountID"`
	Username     string          `json:"username"`
	DisplayName  string          `json:"displayName"`
	Role         Role            `json:"role"`
	Status       AccountStatus   `json:"status"`
	Balance      decimal.Decimal `json:"balance"`
	PasswordHash string          `json:"-"`
	AuditFields
}

// IsActive reports whether the account may be debited.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
