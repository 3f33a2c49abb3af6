// Package stats derives the dashboard KPI figures from the current
// collections. The snapshot is a pure projection: it is recomputed on every
// read and never stored or cached across mutations.
package stats

import (
	"github.com/facturio/facturio/internal/domain/client"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Snapshot holds the derived KPI values for one point in time
type Snapshot struct {
	// TotalRevenue is the sum of totals over PAID invoices
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	// PendingRevenue is the sum of totals over SENT invoices
	PendingRevenue decimal.Decimal `json:"pending_revenue"`
	// OverdueRevenue is the sum of totals over OVERDUE invoices
	OverdueRevenue decimal.Decimal `json:"overdue_revenue"`
	// InvoicesCount counts all invoices regardless of status
	InvoicesCount int `json:"invoices_count"`
	// ClientsCount counts all clients
	ClientsCount int `json:"clients_count"`
}

// Compute derives a Snapshot from the given collections
func Compute(invoices []*invoice.Invoice, clients []*client.Client) Snapshot {
	return Snapshot{
		TotalRevenue:   revenueByStatus(invoices, types.InvoiceStatusPaid),
		PendingRevenue: revenueByStatus(invoices, types.InvoiceStatusSent),
		OverdueRevenue: revenueByStatus(invoices, types.InvoiceStatusOverdue),
		InvoicesCount:  len(invoices),
		ClientsCount:   len(clients),
	}
}

func revenueByStatus(invoices []*invoice.Invoice, status types.InvoiceStatus) decimal.Decimal {
	matching := lo.Filter(invoices, func(inv *invoice.Invoice, _ int) bool {
		return inv.Status == status
	})
	return lo.Reduce(matching, func(acc decimal.Decimal, inv *invoice.Invoice, _ int) decimal.Decimal {
		return acc.Add(inv.Total)
	}, decimal.Zero)
}
