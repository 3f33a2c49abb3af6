// Package events defines the payloads carried on the in-process bus.
// Each topic has exactly one payload shape, so handlers can switch on the
// concrete type without reflection or untyped maps.
package events

import (
	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/types"
)

// Topic is a named channel on the event bus identifying an event category
type Topic string

const (
	TopicInvoiceCreated Topic = "invoice.created"
	TopicInvoiceUpdated Topic = "invoice.updated"
	TopicClientCreated  Topic = "client.created"
	TopicNotification   Topic = "notification"
)

// Event is the tagged union of all bus payloads
type Event interface {
	EventTopic() Topic
}

// InvoiceCreated announces a new invoice to be appended to the store
type InvoiceCreated struct {
	Invoice *invoice.Invoice
}

func (InvoiceCreated) EventTopic() Topic { return TopicInvoiceCreated }

// InvoiceUpdated announces a replacement for an invoice already in the store
type InvoiceUpdated struct {
	Invoice *invoice.Invoice
}

func (InvoiceUpdated) EventTopic() Topic { return TopicInvoiceUpdated }

// ClientCreated announces a new client to be appended to the store
type ClientCreated struct {
	Client *client.Client
}

func (ClientCreated) EventTopic() Topic { return TopicClientCreated }

// Notification is a user-facing notice derived from a domain mutation
type Notification struct {
	Kind    types.NotificationKind
	Title   string
	Message string
}

func (Notification) EventTopic() Topic { return TopicNotification }
