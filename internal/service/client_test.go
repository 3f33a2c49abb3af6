// Test code for the client service
package service

import (
	"testing"

	"github.com/facturio/facturio/internal/api/dto"
	"github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseSuite
	clientService ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.SetupSuiteComponents()
	s.SeedStore()
	s.clientService = NewClientService(ServiceParams{
		Logger: s.Logger,
		Config: s.Config,
		Bus:    s.Bus,
		Store:  s.Store,
	})
}

func (s *ClientServiceSuite) TearDownTest() {
	s.TearDownSuiteComponents()
}

func (s *ClientServiceSuite) TestCreateClient() {
	testCases := []struct {
		name          string
		request       dto.CreateClientRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateClientRequest{
				Name:         "Acme",
				Email:        "billing@acme.test",
				Address:      "1 Rue de la Paix, 75002 Paris",
				SIREN:        "123 456 789",
				PaymentTerms: 30,
			},
			expectedError: false,
		},
		{
			name: "missing_name",
			request: dto.CreateClientRequest{
				Email:        "billing@acme.test",
				PaymentTerms: 30,
			},
			expectedError: true,
		},
		{
			name: "invalid_email",
			request: dto.CreateClientRequest{
				Name:         "Acme",
				Email:        "not-an-email",
				PaymentTerms: 30,
			},
			expectedError: true,
		},
		{
			name: "negative_payment_terms",
			request: dto.CreateClientRequest{
				Name:         "Acme",
				Email:        "billing@acme.test",
				PaymentTerms: -1,
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := s.Store.Stats()

			resp, err := s.clientService.CreateClient(s.Ctx, tc.request)
			after := s.Store.Stats()

			if tc.expectedError {
				s.Error(err)
				s.True(errors.IsValidation(err))
				s.Nil(resp)
				s.Equal(before.ClientsCount, after.ClientsCount,
					"failed validation must leave the store unchanged")
				return
			}

			s.NoError(err)
			s.Require().NotNil(resp)
			s.NotEmpty(resp.Client.ID)
			s.Equal(before.ClientsCount+1, after.ClientsCount)
			s.Equal(before.InvoicesCount, after.InvoicesCount)
		})
	}
}

func (s *ClientServiceSuite) TestCreateClientAppliedThroughBus() {
	_, err := s.clientService.CreateClient(s.Ctx, dto.CreateClientRequest{
		Name:         "Acme",
		Email:        "billing@acme.test",
		PaymentTerms: 15,
	})
	s.Require().NoError(err)

	// The service never touches the store directly; the record must have
	// arrived through the bus subscription.
	found := false
	for _, c := range s.Store.Clients() {
		if c.Name == "Acme" {
			found = true
		}
	}
	s.True(found)
}

func (s *ClientServiceSuite) TestDuplicateNamesAllowed() {
	req := dto.CreateClientRequest{
		Name:         "Twins SARL",
		Email:        "one@twins.test",
		PaymentTerms: 30,
	}
	first, err := s.clientService.CreateClient(s.Ctx, req)
	s.Require().NoError(err)
	second, err := s.clientService.CreateClient(s.Ctx, req)
	s.Require().NoError(err)

	s.NotEqual(first.Client.ID, second.Client.ID,
		"only the identity is unique, names are not checked")
	s.Equal(5, s.Store.Stats().ClientsCount)
}
