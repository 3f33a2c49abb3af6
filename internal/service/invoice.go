package service

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/api/dto"
	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/events"
)

// InvoiceService is the boundary for invoice mutations. Create and update
// are distinct commands: SaveInvoice routes on whether the request carries
// an identity, so the decision is the caller's rather than a check against
// store state.
type InvoiceService interface {
	// SaveInvoice persists a draft: requests without an ID create a new
	// invoice, requests with an ID update the stored one
	SaveInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error)
	// CreateInvoice publishes a new invoice built from the request
	CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error)
	// UpdateInvoice publishes a replacement for an existing invoice;
	// an unknown identity is an error, not an insert
	UpdateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

func (s *invoiceService) SaveInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.ID == "" {
		return s.CreateInvoice(ctx, req)
	}
	return s.UpdateInvoice(ctx, req)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	s.simulateLatency()
	s.Bus.Publish(ctx, events.InvoiceCreated{Invoice: inv})
	s.Logger.Infow("invoice created",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"status", inv.Status,
		"total", inv.Total,
	)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.ID == "" {
		return nil, ierr.NewError("invoice id is required for update").
			WithHint("Use CreateInvoice for invoices without an identity").
			Mark(ierr.ErrValidation)
	}

	inv, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.Store.GetInvoice(inv.ID); err != nil {
		return nil, err
	}

	s.simulateLatency()
	s.Bus.Publish(ctx, events.InvoiceUpdated{Invoice: inv})
	s.Logger.Infow("invoice updated",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"status", inv.Status,
		"total", inv.Total,
	)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// prepare validates the request and builds the domain record with the due
// date derived from the client's payment terms when not supplied
func (s *invoiceService) prepare(req dto.SaveInvoiceRequest) (*invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv := req.ToInvoice()

	if inv.DueDate.IsZero() {
		terms := s.Config.Invoicing.DefaultPaymentTermsDays
		if c, err := s.Store.GetClient(inv.ClientID); err == nil {
			terms = c.PaymentTerms
		}
		inv.DueDate = inv.IssueDate.AddDate(0, 0, terms)
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// simulateLatency emulates the network round trip of a real backend save.
// Ordering never depends on it; the mutation is simply visible once the
// delay has elapsed.
func (s *invoiceService) simulateLatency() {
	if d := s.Config.Invoicing.SaveLatency; d > 0 {
		time.Sleep(d)
	}
}
