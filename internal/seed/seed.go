// Package seed provides the fixed bootstrap dataset the store starts from.
// It stands in for persisted state; there is no compatibility contract.
package seed

import (
	"time"

	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
)

// Clients returns the initial client collection
func Clients() []*client.Client {
	return []*client.Client{
		{
			ID:           "c1",
			Name:         "TechSolutions SAS",
			Email:        "contact@techsolutions.fr",
			Address:      "12 Avenue des Champs-Élysées, 75008 Paris",
			SIREN:        "892 123 456",
			PaymentTerms: 30,
		},
		{
			ID:           "c2",
			Name:         "Boulangerie Durand",
			Email:        "jean.durand@orange.fr",
			Address:      "45 Rue de la République, 69002 Lyon",
			SIREN:        "456 789 123",
			PaymentTerms: 15,
		},
		{
			ID:           "c3",
			Name:         "Consulting Partners",
			Email:        "finance@consulting-partners.com",
			Address:      "10 Quai des Chartrons, 33000 Bordeaux",
			SIREN:        "789 123 456",
			PaymentTerms: 45,
		},
	}
}

// Invoices returns the initial invoice collection, most recent first once
// loaded by the store. Totals are recomputed at load so the derived-totals
// invariant holds for fixtures too.
func Invoices() []*invoice.Invoice {
	invoices := []*invoice.Invoice{
		{
			ID:            "i1",
			InvoiceNumber: "FAC-2024-001",
			ClientID:      "c1",
			Status:        types.InvoiceStatusPaid,
			IssueDate:     date(2024, 4, 1),
			DueDate:       date(2024, 5, 1),
			LineItems: []*invoice.LineItem{
				item("it1", "Développement Module Auth", "5", "850", "20"),
				item("it2", "Maintenance Serveur Avril", "1", "200", "20"),
			},
			CreatedAt: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "i2",
			InvoiceNumber: "FAC-2024-002",
			ClientID:      "c2",
			Status:        types.InvoiceStatusOverdue,
			IssueDate:     date(2024, 4, 10),
			DueDate:       date(2024, 4, 25),
			LineItems: []*invoice.LineItem{
				item("it3", "Installation Caisse Tactile", "1", "1200", "20"),
				item("it4", "Formation Personnel", "4", "90", "20"),
			},
			CreatedAt: time.Date(2024, 4, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:            "i3",
			InvoiceNumber: "FAC-2024-003",
			ClientID:      "c3",
			Status:        types.InvoiceStatusSent,
			IssueDate:     date(2024, 5, 15),
			DueDate:       date(2024, 6, 30),
			LineItems: []*invoice.LineItem{
				item("it5", "Audit Sécurité", "3", "1100", "20"),
			},
			CreatedAt: time.Date(2024, 5, 15, 9, 15, 0, 0, time.UTC),
		},
	}

	for _, inv := range invoices {
		inv.RecomputeTotals()
	}
	return invoices
}

func item(id, description, quantity, unitPrice, taxRate string) *invoice.LineItem {
	return &invoice.LineItem{
		ID:          id,
		Description: description,
		Quantity:    decimal.RequireFromString(quantity),
		UnitPrice:   decimal.RequireFromString(unitPrice),
		TaxRate:     decimal.RequireFromString(taxRate),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
