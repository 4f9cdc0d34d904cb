package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BillingTotals aggregates invoice amounts split by status.
type BillingTotals struct {
	TotalRevenue  decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
}

// EntityCounts are the headline counters for the admin dashboard.
type EntityCounts struct {
	Patients          int
	Invoices          int
	Claims            int
	Staff             int
	Surgeries         int
	Rooms             int
	AvailableRooms    int
	Complaints        int
	PendingComplaints int
}

// AnalyticsRepository runs the read-only aggregate queries behind
// dashboards and reports.
type AnalyticsRepository interface {
	GetBillingTotals(ctx context.Context) (*BillingTotals, error)
	GetEntityCounts(ctx context.Context) (*EntityCounts, error)
	// CountInvoicesSince returns the number of invoices created at or after
	// since, and the sum of their totals for those already PAID.
	CountInvoicesSince(ctx context.Context, since time.Time) (count int, paidTotal decimal.Decimal, err error)
	ListPendingInvoiceIDs(ctx context.Context) ([]string, error)
}
