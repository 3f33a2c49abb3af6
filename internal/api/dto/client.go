package dto

import (
	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
)

type CreateClientRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	SIREN        string `json:"siren" validate:"omitempty,max=20"`
	VATNumber    string `json:"vat_number" validate:"omitempty,max=20"`
	PaymentTerms int    `json:"payment_terms" validate:"min=0"`
}

type ClientResponse struct {
	*client.Client
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient() *client.Client {
	return &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         r.Name,
		Email:        r.Email,
		Address:      r.Address,
		SIREN:        r.SIREN,
		VATNumber:    r.VATNumber,
		PaymentTerms: r.PaymentTerms,
	}
}
