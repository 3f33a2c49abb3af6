package invoice

import (
	"time"

	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. The three monetary totals are
// derived from the line items and must never be stale: RecomputeTotals runs
// whenever the item collection changes.
type Invoice struct {
	// ID is the unique identifier for the invoice. Once assigned it never
	// changes; saving with a known ID replaces the stored record.
	ID string `json:"id"`

	// InvoiceNumber is the human-readable number shown to the client.
	// It is caller-generated and not guaranteed unique.
	InvoiceNumber string `json:"invoice_number"`

	// ClientID references the billed client. A dangling reference is
	// tolerated; lookups fall back to a placeholder.
	ClientID string `json:"client_id"`

	Status types.InvoiceStatus `json:"status"`

	// IssueDate is the date the invoice was issued
	IssueDate time.Time `json:"issue_date"`

	// DueDate defaults to IssueDate plus the client's payment terms when
	// not supplied explicitly
	DueDate time.Time `json:"due_date"`

	// LineItems is the ordered item collection
	LineItems []*LineItem `json:"line_items"`

	Notes string `json:"notes,omitempty"`

	Subtotal decimal.Decimal `json:"subtotal"`
	TaxTotal decimal.Decimal `json:"tax_total"`
	Total    decimal.Decimal `json:"total"`

	CreatedAt time.Time `json:"created_at"`
}

// RecomputeTotals derives Subtotal, TaxTotal and Total from the current line
// items. Call sites must invoke this synchronously after any item mutation.
func (i *Invoice) RecomputeTotals() {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, item := range i.LineItems {
		subtotal = subtotal.Add(item.Amount())
		taxTotal = taxTotal.Add(item.TaxAmount())
	}
	i.Subtotal = subtotal
	i.TaxTotal = taxTotal
	i.Total = subtotal.Add(taxTotal)
}

func (i *Invoice) Validate() error {
	if i.ID == "" {
		return ierr.NewError("invoice id is required").
			WithHint("Invoice ID cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := i.Status.Validate(); err != nil {
		return err
	}
	if i.Subtotal.IsNegative() {
		return ierr.NewError("invalid subtotal").
			WithHint("Subtotal must be non negative").
			Mark(ierr.ErrValidation)
	}
	if !i.Total.Equal(i.Subtotal.Add(i.TaxTotal)) {
		return ierr.NewError("inconsistent invoice totals").
			WithHint("Total must equal subtotal plus tax total").
			Mark(ierr.ErrValidation)
	}
	if !i.DueDate.IsZero() && !i.IssueDate.IsZero() && i.DueDate.Before(i.IssueDate) {
		return ierr.NewError("invalid due date").
			WithHint("Due date must not be before the issue date").
			Mark(ierr.ErrValidation)
	}
	for _, item := range i.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy so store snapshots cannot be mutated by readers
func (i *Invoice) Clone() *Invoice {
	out := *i
	if i.LineItems != nil {
		out.LineItems = make([]*LineItem, len(i.LineItems))
		for idx, item := range i.LineItems {
			itemCopy := *item
			out.LineItems[idx] = &itemCopy
		}
	}
	return &out
}
