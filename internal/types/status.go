package types

import (
	ierr "github.com/facturio/facturio/internal/errors"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates invoice is being edited and has not been dispatched
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusSent indicates invoice has been sent to the client and awaits payment
	InvoiceStatusSent InvoiceStatus = "SENT"
	// InvoiceStatusPaid indicates payment has been received in full
	InvoiceStatusPaid InvoiceStatus = "PAID"
	// InvoiceStatusOverdue indicates the due date has passed without settlement
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
	// InvoiceStatusCancelled indicates the invoice was voided and will not be paid.
	// No flow currently produces this status; it exists for completeness of the
	// status table.
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewError("invalid invoice status").
		WithHintf("Invoice status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}
