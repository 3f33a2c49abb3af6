// Package store owns the authoritative in-memory collections of clients and
// invoices for the lifetime of the session. The store is the single writer:
// every mutation arrives as a bus event, and all other components read
// copied snapshots or listen on the bus.
package store

import (
	"context"
	"sync"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/stats"
)

// UnknownClientName is the placeholder label rendered when an invoice
// references a client that does not exist
const UnknownClientName = "unknown"

// Store holds the client and invoice collections. Construct one per process
// with New and wire it to the bus with Attach.
type Store struct {
	mu       sync.RWMutex
	clients  []*client.Client
	invoices []*invoice.Invoice
	logger   *logger.Logger

	unsubscribes []bus.UnsubscribeFunc
}

func New(log *logger.Logger) *Store {
	return &Store{
		logger: log,
	}
}

// Load replaces the collections with the given bootstrap data. Intended for
// process start, before any events flow.
func (s *Store) Load(clients []*client.Client, invoices []*invoice.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = clients
	s.invoices = invoices
}

// Attach subscribes the store to the mutation topics. Detach reverses it.
func (s *Store) Attach(b *bus.Bus) {
	s.unsubscribes = []bus.UnsubscribeFunc{
		b.Subscribe(events.TopicClientCreated, s.onClientCreated),
		b.Subscribe(events.TopicInvoiceCreated, s.onInvoiceCreated),
		b.Subscribe(events.TopicInvoiceUpdated, s.onInvoiceUpdated),
	}
}

// Detach removes the store's bus subscriptions
func (s *Store) Detach() {
	for _, unsub := range s.unsubscribes {
		unsub()
	}
	s.unsubscribes = nil
}

func (s *Store) onClientCreated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.ClientCreated)
	if !ok {
		s.logger.Errorw("unexpected payload on client.created", "event", event)
		return
	}
	if err := s.ApplyClientCreated(payload.Client); err != nil {
		s.logger.Warnw("dropping client.created event", "error", err)
	}
}

func (s *Store) onInvoiceCreated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.InvoiceCreated)
	if !ok {
		s.logger.Errorw("unexpected payload on invoice.created", "event", event)
		return
	}
	if err := s.ApplyInvoiceCreated(payload.Invoice); err != nil {
		s.logger.Warnw("dropping invoice.created event", "error", err)
	}
}

func (s *Store) onInvoiceUpdated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.InvoiceUpdated)
	if !ok {
		s.logger.Errorw("unexpected payload on invoice.updated", "event", event)
		return
	}
	if err := s.ApplyInvoiceUpdated(payload.Invoice); err != nil {
		// An update for an identity the store has never seen is a lost
		// write from the caller's point of view; surface it rather than
		// swallowing it.
		s.logger.Warnw("invoice update did not match any stored invoice",
			"invoice_id", payload.Invoice.ID,
			"error", err,
		)
	}
}

// ApplyClientCreated appends the client to the collection. Only the ID is
// assumed unique; names and emails are not checked.
func (s *Store) ApplyClientCreated(c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
	return nil
}

// ApplyInvoiceCreated prepends the invoice so the collection stays
// most-recent-first. Totals are recomputed before insert so the stored
// record can never carry stale totals.
func (s *Store) ApplyInvoiceCreated(inv *invoice.Invoice) error {
	inv.RecomputeTotals()
	if err := inv.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]*invoice.Invoice{inv}, s.invoices...)
	return nil
}

// ApplyInvoiceUpdated replaces the stored invoice with the same ID. When no
// invoice matches, the collection is left unchanged and ErrNotFound is
// returned; there is no insert-on-missing fallback.
func (s *Store) ApplyInvoiceUpdated(inv *invoice.Invoice) error {
	inv.RecomputeTotals()
	if err := inv.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing.ID == inv.ID {
			s.invoices[i] = inv
			return nil
		}
	}
	return ierr.NewError("invoice not found").
		WithHintf("No invoice with ID %s exists", inv.ID).
		Mark(ierr.ErrNotFound)
}

// Clients returns a copied snapshot of the client collection
func (s *Store) Clients() []*client.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*client.Client, len(s.clients))
	for i, c := range s.clients {
		clientCopy := *c
		out[i] = &clientCopy
	}
	return out
}

// Invoices returns a copied snapshot of the invoice collection,
// most recent first
func (s *Store) Invoices() []*invoice.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*invoice.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = inv.Clone()
	}
	return out
}

// GetInvoice returns a copy of the invoice with the given ID
func (s *Store) GetInvoice(id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone(), nil
		}
	}
	return nil, ierr.NewError("invoice not found").
		WithHintf("No invoice with ID %s exists", id).
		Mark(ierr.ErrNotFound)
}

// GetClient returns a copy of the client with the given ID
func (s *Store) GetClient(id string) (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.ID == id {
			clientCopy := *c
			return &clientCopy, nil
		}
	}
	return nil, ierr.NewError("client not found").
		WithHintf("No client with ID %s exists", id).
		Mark(ierr.ErrNotFound)
}

// ClientName resolves a client ID to its display name. Dangling references
// degrade to the placeholder label instead of failing.
func (s *Store) ClientName(id string) string {
	c, err := s.GetClient(id)
	if err != nil {
		return UnknownClientName
	}
	return c.Name
}

// Stats recomputes the derived KPI snapshot from current collection state.
// It is a pure projection over the collections, never cached.
func (s *Store) Stats() stats.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Compute(s.invoices, s.clients)
}
