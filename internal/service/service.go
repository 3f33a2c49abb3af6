package service

import (
	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/store"
)

// ServiceParams holds the shared dependencies injected into every service
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Bus    *bus.Bus
	Store  *store.Store
}
