package dto

import (
	"time"

	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// SaveInvoiceRequest carries a draft to be persisted. An empty ID means a
// new invoice; a non-empty ID means replace-in-place of the stored record
// with that identity.
type SaveInvoiceRequest struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number" validate:"omitempty,max=50"`
	ClientID      string             `json:"client_id" validate:"required"`
	Status        string             `json:"status" validate:"omitempty"`
	IssueDate     time.Time          `json:"issue_date" validate:"required"`
	DueDate       *time.Time         `json:"due_date"`
	LineItems     []*LineItemRequest `json:"line_items" validate:"dive"`
	Notes         string             `json:"notes" validate:"omitempty,max=2000"`
}

type InvoiceResponse struct {
	*invoice.Invoice
}

func (r *SaveInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		if err := types.InvoiceStatus(r.Status).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToInvoice builds the domain record. IDs are assigned where absent; the
// status defaults to SENT to simulate immediate dispatch on save; totals are
// recomputed from the items.
func (r *SaveInvoiceRequest) ToInvoice() *invoice.Invoice {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	}

	number := r.InvoiceNumber
	if number == "" {
		number = types.GenerateInvoiceNumber()
	}

	status := types.InvoiceStatus(r.Status)
	if status == "" {
		status = types.InvoiceStatusSent
	}

	items := make([]*invoice.LineItem, len(r.LineItems))
	for i, item := range r.LineItems {
		itemID := item.ID
		if itemID == "" {
			itemID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
		}
		items[i] = &invoice.LineItem{
			ID:          itemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
		}
	}

	// A zero due date means "derive from the client's payment terms";
	// the service fills it in before publishing.
	var dueDate time.Time
	if r.DueDate != nil {
		dueDate = *r.DueDate
	}

	inv := &invoice.Invoice{
		ID:            id,
		InvoiceNumber: number,
		ClientID:      r.ClientID,
		Status:        status,
		IssueDate:     r.IssueDate,
		DueDate:       dueDate,
		LineItems:     items,
		Notes:         r.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	inv.RecomputeTotals()
	return inv
}
