package invoice

import (
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem represents a single billable line in an invoice
type LineItem struct {
	// ID is unique within the owning invoice
	ID string `json:"id"`

	// Description is free text describing the work or goods
	Description string `json:"description"`

	// Quantity may be fractional (e.g. half-days)
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the price per unit before tax
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TaxRate is a percentage, e.g. 20 for 20% VAT
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// Amount returns the line total before tax
func (li *LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// TaxAmount returns the tax due on this line
func (li *LineItem) TaxAmount() decimal.Decimal {
	return li.Amount().Mul(li.TaxRate).Div(hundred)
}

func (li *LineItem) Validate() error {
	if li.Quantity.IsNegative() {
		return ierr.NewError("invalid line item quantity").
			WithHint("Quantity must be non negative").
			Mark(ierr.ErrValidation)
	}
	if li.UnitPrice.IsNegative() {
		return ierr.NewError("invalid line item unit price").
			WithHint("Unit price must be non negative").
			Mark(ierr.ErrValidation)
	}
	if li.TaxRate.IsNegative() {
		return ierr.NewError("invalid line item tax rate").
			WithHint("Tax rate must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
