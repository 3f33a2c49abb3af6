package testutil

import (
	"context"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/notify"
	"github.com/facturio/facturio/internal/seed"
	"github.com/facturio/facturio/internal/store"
	"github.com/stretchr/testify/suite"
)

// BaseSuite wires a fully attached bus, store and relay around a nop logger
// for service-level tests
type BaseSuite struct {
	suite.Suite
	Ctx    context.Context
	Logger *logger.Logger
	Config *config.Configuration
	Bus    *bus.Bus
	Store  *store.Store
	Relay  *notify.Relay
}

// SetupSuiteComponents builds fresh components. Call from SetupTest so each
// test starts from a clean store.
func (s *BaseSuite) SetupSuiteComponents() {
	s.Ctx = context.Background()
	s.Logger = logger.NewNopLogger()
	s.Config = config.GetDefaultConfig()
	s.Bus = bus.New(s.Logger)
	s.Store = store.New(s.Logger)
	s.Store.Attach(s.Bus)
	s.Relay = notify.NewRelay(s.Bus, s.Logger)
	s.Relay.Attach()
}

// SeedStore loads the fixture dataset into the store
func (s *BaseSuite) SeedStore() {
	s.Store.Load(seed.Clients(), seed.Invoices())
}

// TearDownSuiteComponents detaches everything from the bus
func (s *BaseSuite) TearDownSuiteComponents() {
	if s.Relay != nil {
		s.Relay.Detach()
	}
	if s.Store != nil {
		s.Store.Detach()
	}
}
