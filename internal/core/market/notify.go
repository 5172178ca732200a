package market

import (
	"fmt"

	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// notice builds a notification effect addressed to accountID, or to the
// administrators when accountID is empty.
func (m *Marketplace) notice(accountID string, category domain.NotificationCategory, title, format string, args ...any) domain.Effect {
	return domain.NotifyEffect(domain.Notification{
		NotificationID: m.newID(),
		AccountID:      accountID,
		Title:          title,
		Message:        fmt.Sprintf(format, args...),
		Category:       category,
		CreatedAt:      m.now(),
	})
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
