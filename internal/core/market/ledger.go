package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/fastpay_escrow/internal/apperrors"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewAccount is the input to OpenAccount.
type NewAccount struct {
	// AccountID is generated when empty.
	AccountID      string
	Username       string
	DisplayName    string
	Role           domain.Role
	PasswordHash   string
	OpeningBalance decimal.Decimal
	CreatedBy      string
}

// TransferResult holds both sides of a transfer after it was applied.
type TransferResult struct {
	From domain.Account
	To   domain.Account
}

// OpenAccount registers a new ACTIVE account.
func (m *Marketplace) OpenAccount(in NewAccount) (domain.Account, []domain.Effect, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.Account{}, nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if !in.Role.IsValid() {
		return domain.Account{}, nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, in.Role)
	}
	if in.OpeningBalance.IsNegative() {
		return domain.Account{}, nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrInvalidAmount)
	}

	id := in.AccountID
	if id == "" {
		id = m.newID()
	}
	release := m.mutate(accountKey(id))
	defer release()

	now := m.now()
	by := in.CreatedBy
	if by == "" {
		by = id
	}
	acc := &domain.Account{
		AccountID:    id,
		Username:     username,
		DisplayName:  in.DisplayName,
		Role:         in.Role,
		Status:       domain.AccountActive,
		Balance:      in.OpeningBalance,
		PasswordHash: in.PasswordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     by,
			LastUpdatedAt: now,
			LastUpdatedBy: by,
		},
	}

	m.index.Lock()
	if _, taken := m.usernames[username]; taken {
		m.index.Unlock()
		return domain.Account{}, nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, username)
	}
	if _, taken := m.accounts[id]; taken {
		m.index.Unlock()
		return domain.Account{}, nil, fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, id)
	}
	m.accounts[id] = acc
	m.usernames[username] = id
	m.index.Unlock()

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts),
		m.notice(id, domain.CategoryUser, "Welcome to FastPay", "Account %s was opened with role %s", username, in.Role),
	}
	return *acc, effects, nil
}

// Account returns a copy of the account with the given id.
func (m *Marketplace) Account(id string) (domain.Account, error) {
	unlock := m.locks.Lock(accountKey(id))
	defer unlock()
	acc := m.lookupAccount(id)
	if acc == nil {
		return domain.Account{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
	}
	return *acc, nil
}

// AccountByUsername resolves an account by its login name.
func (m *Marketplace) AccountByUsername(username string) (domain.Account, error) {
	m.index.RLock()
	id, ok := m.usernames[strings.TrimSpace(username)]
	m.index.RUnlock()
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: username %q", apperrors.ErrNotFound, username)
	}
	return m.Account(id)
}

// Accounts lists every account, oldest first.
func (m *Marketplace) Accounts() []domain.Account {
	release := m.quiesce()
	defer release()

	out := make([]domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out
}

// SetAccountStatus suspends or reactivates an account. Only administrators may do so.
func (m *Marketplace) SetAccountStatus(actorID, accountID string, status domain.AccountStatus) (domain.Account, []domain.Effect, error) {
	if status != domain.AccountActive && status != domain.AccountSuspended {
		return domain.Account{}, nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, status)
	}
	if err := m.requireAdmin(actorID); err != nil {
		return domain.Account{}, nil, err
	}
	if actorID == accountID {
		return domain.Account{}, nil, fmt.Errorf("%w: administrators cannot change their own status", apperrors.ErrForbidden)
	}

	release := m.mutate(accountKey(accountID))
	defer release()

	acc := m.lookupAccount(accountID)
	if acc == nil {
		return domain.Account{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if acc.Status == status {
		return *acc, nil, nil
	}
	acc.Status = status
	acc.Touch(actorID, m.now())

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts),
		m.notice(accountID, domain.CategorySecurity, "Account status changed", "Your account is now %s", status),
	}
	return *acc, effects, nil
}

// Debit removes amount from an account. It fails before any mutation when the
// amount is not positive, the account is suspended or the balance is too low.
func (m *Marketplace) Debit(accountID string, amount decimal.Decimal) (domain.Account, []domain.Effect, error) {
	release := m.mutate(accountKey(accountID))
	defer release()

	acc := m.lookupAccount(accountID)
	if acc == nil {
		return domain.Account{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if err := checkDebit(acc, amount); err != nil {
		return domain.Account{}, nil, err
	}
	m.applyDebit(acc, amount)

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts),
		m.notice(accountID, domain.CategoryMoney, "Balance debited", "%s was debited from your balance", money(amount)),
	}
	return *acc, effects, nil
}

// Credit adds amount to an account. Suspended accounts can still be credited.
func (m *Marketplace) Credit(accountID string, amount decimal.Decimal) (domain.Account, []domain.Effect, error) {
	release := m.mutate(accountKey(accountID))
	defer release()

	acc := m.lookupAccount(accountID)
	if acc == nil {
		return domain.Account{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if err := checkCredit(amount); err != nil {
		return domain.Account{}, nil, err
	}
	m.applyCredit(acc, amount)

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts),
		m.notice(accountID, domain.CategoryMoney, "Balance credited", "%s was credited to your balance", money(amount)),
	}
	return *acc, effects, nil
}

// Transfer debits fromID and credits toID as one unit. If the debit is not
// possible the credit never happens.
func (m *Marketplace) Transfer(fromID, toID string, amount decimal.Decimal) (TransferResult, []domain.Effect, error) {
	if fromID == toID {
		return TransferResult{}, nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}
	release := m.mutate(accountKey(fromID), accountKey(toID))
	defer release()

	from := m.lookupAccount(fromID)
	if from == nil {
		return TransferResult{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, fromID)
	}
	to := m.lookupAccount(toID)
	if to == nil {
		return TransferResult{}, nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, toID)
	}
	if err := checkDebit(from, amount); err != nil {
		return TransferResult{}, nil, err
	}

	m.applyDebit(from, amount)
	m.applyCredit(to, amount)

	effects := []domain.Effect{
		domain.PersistEffect(domain.CollectionAccounts),
		m.notice(fromID, domain.CategoryMoney, "Transfer sent", "You sent %s to %s", money(amount), to.Username),
		m.notice(toID, domain.CategoryMoney, "Transfer received", "You received %s from %s", money(amount), from.Username),
	}
	return TransferResult{From: *from, To: *to}, effects, nil
}

func checkCredit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}

func checkDebit(acc *domain.Account, amount decimal.Decimal) error {
	if err := checkCredit(amount); err != nil {
		return err
	}
	if !acc.IsActive() {
		return fmt.Errorf("%w: account %s is %s", apperrors.ErrForbidden, acc.AccountID, acc.Status)
	}
	if amount.GreaterThan(acc.Balance) {
		return fmt.Errorf("%w: account %s holds %s, needs %s", apperrors.ErrInsufficientFunds, acc.AccountID, money(acc.Balance), money(amount))
	}
	return nil
}

// applyDebit and applyCredit assume the account key is held and the checks passed.
func (m *Marketplace) applyDebit(acc *domain.Account, amount decimal.Decimal) {
	acc.Balance = acc.Balance.Sub(amount)
	acc.LastUpdatedAt = m.now()
}

func (m *Marketplace) applyCredit(acc *domain.Account, amount decimal.Decimal) {
	acc.Balance = acc.Balance.Add(amount)
	acc.LastUpdatedAt = m.now()
}

// requireAdmin fails with ErrForbidden unless actorID is an administrator.
// Roles never change after an account is opened, so no account key is needed.
func (m *Marketplace) requireAdmin(actorID string) error {
	acc := m.lookupAccount(actorID)
	if acc == nil || acc.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: administrator role required", apperrors.ErrForbidden)
	}
	return nil
}
