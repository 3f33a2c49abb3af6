package store

import (
	"context"
	"testing"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/seed"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	bus   *bus.Bus
	store *Store
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	log := logger.NewNopLogger()
	s.bus = bus.New(log)
	s.store = New(log)
	s.store.Load(seed.Clients(), seed.Invoices())
	s.store.Attach(s.bus)
}

func (s *StoreSuite) TearDownTest() {
	s.store.Detach()
}

func (s *StoreSuite) newInvoice(id string, status types.InvoiceStatus, quantity, unitPrice string) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            id,
		InvoiceNumber: "FAC-TEST-" + id,
		ClientID:      "c1",
		Status:        status,
		LineItems: []*invoice.LineItem{
			{
				ID:        "li_" + id,
				Quantity:  decimal.RequireFromString(quantity),
				UnitPrice: decimal.RequireFromString(unitPrice),
				TaxRate:   decimal.Zero,
			},
		},
	}
	inv.RecomputeTotals()
	return inv
}

func (s *StoreSuite) TestClientCreatedIncrementsOnlyClientCount() {
	before := s.store.Stats()

	s.bus.Publish(s.ctx, events.ClientCreated{Client: &client.Client{
		ID:           "c_acme",
		Name:         "Acme",
		Email:        "billing@acme.test",
		PaymentTerms: 30,
	}})

	after := s.store.Stats()
	s.Equal(before.ClientsCount+1, after.ClientsCount)
	s.Equal(before.InvoicesCount, after.InvoicesCount)
}

func (s *StoreSuite) TestInvoiceCreatedPrepends() {
	inv := s.newInvoice("i_new", types.InvoiceStatusSent, "1", "100")

	s.bus.Publish(s.ctx, events.InvoiceCreated{Invoice: inv})

	invoices := s.store.Invoices()
	s.Require().Len(invoices, 4)
	s.Equal("i_new", invoices[0].ID, "newest invoice must come first")
}

func (s *StoreSuite) TestUpdateMovesRevenueBetweenBuckets() {
	hundred := decimal.NewFromInt(100)

	created := s.newInvoice("i_rev", types.InvoiceStatusPaid, "1", "100")
	s.bus.Publish(s.ctx, events.InvoiceCreated{Invoice: created})

	afterCreate := s.store.Stats()
	s.True(afterCreate.TotalRevenue.Sub(hundred).Equal(decimal.RequireFromString("5340")),
		"total revenue must grow by exactly 100")

	updated := s.newInvoice("i_rev", types.InvoiceStatusSent, "1", "100")
	s.bus.Publish(s.ctx, events.InvoiceUpdated{Invoice: updated})

	afterUpdate := s.store.Stats()
	s.True(afterUpdate.TotalRevenue.Equal(afterCreate.TotalRevenue.Sub(hundred)),
		"total revenue must drop by exactly 100")
	s.True(afterUpdate.PendingRevenue.Equal(afterCreate.PendingRevenue.Add(hundred)),
		"pending revenue must grow by exactly 100")
	s.Equal(afterCreate.InvoicesCount, afterUpdate.InvoicesCount,
		"update must replace, not duplicate")
}

func (s *StoreSuite) TestTotalsInvariantHoldsAfterEventSequence() {
	s.bus.Publish(s.ctx, events.InvoiceCreated{Invoice: s.newInvoice("i_a", types.InvoiceStatusDraft, "3", "250")})
	s.bus.Publish(s.ctx, events.InvoiceCreated{Invoice: s.newInvoice("i_b", types.InvoiceStatusPaid, "2", "75")})
	s.bus.Publish(s.ctx, events.InvoiceUpdated{Invoice: s.newInvoice("i_a", types.InvoiceStatusSent, "4", "250")})

	for _, inv := range s.store.Invoices() {
		recomputed := inv.Clone()
		recomputed.RecomputeTotals()
		s.True(inv.Subtotal.Equal(recomputed.Subtotal), "subtotal stale for %s", inv.ID)
		s.True(inv.TaxTotal.Equal(recomputed.TaxTotal), "tax total stale for %s", inv.ID)
		s.True(inv.Total.Equal(inv.Subtotal.Add(inv.TaxTotal)), "total invariant broken for %s", inv.ID)
	}
}

func (s *StoreSuite) TestUpdateUnknownIdentityLeavesStoreUnchanged() {
	ghost := s.newInvoice("i_ghost", types.InvoiceStatusSent, "1", "50")

	err := s.store.ApplyInvoiceUpdated(ghost)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))

	s.Len(s.store.Invoices(), 3)
	_, err = s.store.GetInvoice("i_ghost")
	s.True(ierr.IsNotFound(err), "unknown update must not insert")
}

func (s *StoreSuite) TestUpdateEventWithUnknownIdentityDoesNotPanic() {
	ghost := s.newInvoice("i_ghost", types.InvoiceStatusSent, "1", "50")

	s.NotPanics(func() {
		s.bus.Publish(s.ctx, events.InvoiceUpdated{Invoice: ghost})
	})
	s.Len(s.store.Invoices(), 3)
}

func (s *StoreSuite) TestClientNameFallsBackToPlaceholder() {
	s.Equal("TechSolutions SAS", s.store.ClientName("c1"))
	s.Equal(UnknownClientName, s.store.ClientName("c_missing"))
}

func (s *StoreSuite) TestSnapshotsAreCopies() {
	invoices := s.store.Invoices()
	invoices[0].InvoiceNumber = "TAMPERED"
	invoices[0].LineItems[0].Description = "TAMPERED"

	fresh := s.store.Invoices()
	s.NotEqual("TAMPERED", fresh[0].InvoiceNumber)
	s.NotEqual("TAMPERED", fresh[0].LineItems[0].Description)

	clients := s.store.Clients()
	clients[0].Name = "TAMPERED"
	s.Equal("TechSolutions SAS", s.store.Clients()[0].Name)
}

func (s *StoreSuite) TestStatsRecomputedPerRead() {
	first := s.store.Stats()
	s.bus.Publish(s.ctx, events.InvoiceCreated{Invoice: s.newInvoice("i_x", types.InvoiceStatusPaid, "1", "10")})
	second := s.store.Stats()

	s.True(second.TotalRevenue.Equal(first.TotalRevenue.Add(decimal.NewFromInt(10))))
}
