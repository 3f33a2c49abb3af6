package service

import (
	"context"

	"github.com/facturio/facturio/internal/api/dto"
	"github.com/facturio/facturio/internal/events"
)

// ClientService is the boundary for client mutations. It validates input,
// builds the domain record and publishes the mutation event; the store is
// never mutated directly.
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	// A validation failure must leave the store untouched: nothing is
	// published until the request is known good.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s.Bus.Publish(ctx, events.ClientCreated{Client: c})
	s.Logger.Infow("client created", "client_id", c.ID, "name", c.Name)

	return &dto.ClientResponse{Client: c}, nil
}
