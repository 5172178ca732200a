package services

import (
	"github.com/SscSPs/fastpay_escrow/internal/core/market"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service shares the marketplace and one effect runner.
func NewServiceContainer(cfg *config.Config, m *market.Marketplace, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) (*portssvc.ServiceContainer, *EffectRunner) {
	effects := NewEffectRunner(m, repos.SnapshotRepo, notifier)

	container := &portssvc.ServiceContainer{}
	container.Ledger = NewLedgerService(m, effects)
	container.Auth = NewAuthService(cfg, container.Ledger)
	container.Listing = NewListingService(m, effects)
	container.Negotiation = NewNegotiationService(m, effects)
	container.Escrow = NewEscrowService(m, effects)
	container.ReviewQueue = NewReviewQueueService(m, effects)
	if repos.NotificationRepo != nil {
		container.Notification = NewNotificationService(repos.NotificationRepo, m)
	}

	return container, effects
}

// NewMarketplace builds the marketplace from configuration.
func NewMarketplace(cfg *config.Config, opts ...market.Option) *market.Marketplace {
	return market.New(market.Config{
		TreasuryAccountID: cfg.TreasuryAccountID,
		FeeRate:           cfg.PlatformFeeRate,
		Policy:            domainPolicy(cfg),
	}, opts...)
}
