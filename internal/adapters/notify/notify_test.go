package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fastpay_escrow/internal/adapters/memory"
	"github.com/SscSPs/fastpay_escrow/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(distinctID string, event string, properties map[string]any) error {
	args := m.Called(distinctID, event, properties)
	return args.Error(0)
}

type failingNotifier struct{ err error }

func (f failingNotifier) Notify(context.Context, domain.Notification) error { return f.err }

func TestPosthogNotifier_AddressesAdminsWhenNoAccount(t *testing.T) {
	client := new(MockEnqueuer)
	client.On("Enqueue", posthogAdminTarget, posthogEvent, mock.MatchedBy(func(p map[string]any) bool {
		return p["notification_id"] == "n1" && p["category"] == "money"
	})).Return(nil).Once()

	err := NewPosthogNotifier(client).Notify(context.Background(), domain.Notification{
		NotificationID: "n1",
		Category:       domain.CategoryMoney,
		Title:          "New escrow",
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestFanOut_DeliversEverywhereAndJoinsErrors(t *testing.T) {
	store := memory.NewNotificationStore()
	boom := errors.New("boom")
	fan := NewFanOut(NewLogNotifier(), nil, failingNotifier{err: boom}, NewRepositoryNotifier(store))

	err := fan.Notify(context.Background(), domain.Notification{NotificationID: "n1", AccountID: "a1"})
	assert.ErrorIs(t, err, boom)

	stored, listErr := store.ListNotifications(context.Background(), "a1", false, 10, 0)
	require.NoError(t, listErr)
	assert.Len(t, stored, 1, "a failing channel must not stop the others")
}
