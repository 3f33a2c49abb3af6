package client

import (
	ierr "github.com/facturio/facturio/internal/errors"
)

// Client represents a billable customer of the business.
// Clients are immutable once created; there is no update or delete flow.
type Client struct {
	// ID is the unique identifier for the client
	ID string `json:"id"`

	// Name is the display name of the client
	Name string `json:"name"`

	// Email is the billing contact email
	Email string `json:"email"`

	// Address is the postal address as free text
	Address string `json:"address"`

	// SIREN is the French business registration number, if any
	SIREN string `json:"siren,omitempty"`

	// VATNumber is the intra-community VAT identifier, if any
	VATNumber string `json:"vat_number,omitempty"`

	// PaymentTerms is the number of days after the issue date an invoice
	// for this client falls due
	PaymentTerms int `json:"payment_terms"`
}

func (c *Client) Validate() error {
	if c.ID == "" {
		return ierr.NewError("client id is required").
			WithHint("Client ID cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if c.Name == "" {
		return ierr.NewError("client name is required").
			WithHint("Client name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if c.PaymentTerms < 0 {
		return ierr.NewError("invalid payment terms").
			WithHint("Payment terms must be a non-negative number of days").
			Mark(ierr.ErrValidation)
	}
	return nil
}
