package main

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/notify"
	"github.com/facturio/facturio/internal/seed"
	"github.com/facturio/facturio/internal/service"
	"github.com/facturio/facturio/internal/store"
	"github.com/facturio/facturio/internal/types"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			newLogger,
			bus.New,
			newStore,
			newRelay,
			newCenter,
			newServiceParams,
			service.NewClientService,
			service.NewInvoiceService,
		),
		fx.Invoke(startDashboard),
	)

	app.Run()
}

func newLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func newStore(cfg *config.Configuration, log *logger.Logger) *store.Store {
	s := store.New(log)
	switch cfg.Deployment.Mode {
	case types.ModeDemo:
		// demo mode starts from an empty store
	case types.ModeLocal:
		s.Load(seed.Clients(), seed.Invoices())
	default:
		log.Warnw("unknown deployment mode, loading seed dataset", "mode", cfg.Deployment.Mode)
		s.Load(seed.Clients(), seed.Invoices())
	}
	return s
}

func newRelay(b *bus.Bus, log *logger.Logger) *notify.Relay {
	return notify.NewRelay(b, log)
}

func newCenter(cfg *config.Configuration, log *logger.Logger) *notify.Center {
	return notify.NewCenter(cfg.Notification.AutoDismissAfter, log)
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	b *bus.Bus,
	s *store.Store,
) service.ServiceParams {
	return service.ServiceParams{
		Logger: log,
		Config: cfg,
		Bus:    b,
		Store:  s,
	}
}

func startDashboard(
	lc fx.Lifecycle,
	log *logger.Logger,
	b *bus.Bus,
	s *store.Store,
	relay *notify.Relay,
	center *notify.Center,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Subscription order matters: the store must apply a
			// mutation before the relay announces it.
			s.Attach(b)
			relay.Attach()
			center.Attach(b)

			snapshot := s.Stats()
			log.Infow("dashboard ready",
				"clients", snapshot.ClientsCount,
				"invoices", snapshot.InvoicesCount,
				"total_revenue", snapshot.TotalRevenue,
				"pending_revenue", snapshot.PendingRevenue,
				"overdue_revenue", snapshot.OverdueRevenue,
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			center.Detach()
			relay.Detach()
			s.Detach()
			return nil
		},
	})
}
