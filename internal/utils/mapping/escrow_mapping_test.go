package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEscrowMappingKeepsOptionalFieldsEmpty(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tx := domain.EscrowTransaction{
		EscrowID:  "01HV",
		ListingID: "l-1",
		BuyerID:   "b-1",
		SellerID:  "s-1",
		Amount:    decimal.RequireFromString("120.50"),
		Fee:       decimal.RequireFromString("1.21"),
		Status:    domain.EscrowHeld,
		CreatedAt: now,
	}

	m := ToModelEscrow(tx)
	assert.False(t, m.ProofRef.Valid)
	assert.False(t, m.Notes.Valid)
	assert.False(t, m.ResolvedBy.Valid)
	assert.Equal(t, "HELD", m.Status)

	back := ToDomainEscrow(m)
	assert.Equal(t, tx, back)
}

func TestNotificationMappingBroadcast(t *testing.T) {
	n := domain.Notification{NotificationID: "n-1", Title: "New escrow", Category: domain.CategoryMoney}
	m := ToModelNotification(n)
	assert.False(t, m.AccountID.Valid, "admin broadcast is stored with a NULL account id")

	n.AccountID = "acc-1"
	m = ToModelNotification(n)
	assert.True(t, m.AccountID.Valid)
	assert.Equal(t, "acc-1", ToDomainNotification(m).AccountID)
}
