// Package notify translates domain mutation events into short-lived
// user-facing notices: the Relay republishes mutation events as notification
// events, and the Center displays and auto-expires them.
package notify

import (
	"context"
	"fmt"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/types"
)

// Relay listens for store mutations and republishes user-facing
// notification events on the same bus
type Relay struct {
	bus    *bus.Bus
	logger *logger.Logger

	unsubscribes []bus.UnsubscribeFunc
}

func NewRelay(b *bus.Bus, log *logger.Logger) *Relay {
	return &Relay{
		bus:    b,
		logger: log,
	}
}

// Attach subscribes the relay to the mutation topics. It must run after the
// store's Attach so notices always describe applied state.
func (r *Relay) Attach() {
	r.unsubscribes = []bus.UnsubscribeFunc{
		r.bus.Subscribe(events.TopicInvoiceCreated, r.onInvoiceCreated),
		r.bus.Subscribe(events.TopicInvoiceUpdated, r.onInvoiceUpdated),
		r.bus.Subscribe(events.TopicClientCreated, r.onClientCreated),
	}
}

// Detach removes the relay's bus subscriptions
func (r *Relay) Detach() {
	for _, unsub := range r.unsubscribes {
		unsub()
	}
	r.unsubscribes = nil
}

func (r *Relay) onInvoiceCreated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.InvoiceCreated)
	if !ok {
		return
	}
	r.bus.Publish(ctx, events.Notification{
		Kind:    types.NotificationKindSuccess,
		Title:   "Invoice created",
		Message: fmt.Sprintf("Invoice %s was added successfully.", payload.Invoice.InvoiceNumber),
	})
}

func (r *Relay) onInvoiceUpdated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.InvoiceUpdated)
	if !ok {
		return
	}
	r.bus.Publish(ctx, events.Notification{
		Kind:    types.NotificationKindInfo,
		Title:   "Invoice updated",
		Message: fmt.Sprintf("Invoice %s was modified.", payload.Invoice.InvoiceNumber),
	})
}

func (r *Relay) onClientCreated(ctx context.Context, event events.Event) {
	payload, ok := event.(events.ClientCreated)
	if !ok {
		return
	}
	r.bus.Publish(ctx, events.Notification{
		Kind:    types.NotificationKindSuccess,
		Title:   "Client added",
		Message: fmt.Sprintf("Client %s was added to your directory.", payload.Client.Name),
	})
}
