package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo runs the read-only aggregates behind dashboards and reports.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetBillingTotals sums invoice totals split by status.
func (r *AnalyticsRepo) GetBillingTotals(ctx context.Context) (*repository.BillingTotals, error) {
	query := `
		SELECT COALESCE(SUM(total), 0),
		       COALESCE(SUM(total) FILTER (WHERE status = $1), 0),
		       COALESCE(SUM(total) FILTER (WHERE status = $2), 0)
		FROM invoices`
	var t repository.BillingTotals
	err := r.q.QueryRow(ctx, query, entity.InvoiceStatusPaid, entity.InvoiceStatusPending).
		Scan(&t.TotalRevenue, &t.PaidAmount, &t.PendingAmount)
	if err != nil {
		return nil, storageErr("billing totals", err)
	}
	return &t, nil
}

// GetEntityCounts returns the headline counters in one round trip.
func (r *AnalyticsRepo) GetEntityCounts(ctx context.Context) (*repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM patients) + (SELECT COUNT(*) FROM users WHERE role = $1),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM claims),
			(SELECT COUNT(*) FROM users WHERE role <> $1),
			(SELECT COUNT(*) FROM surgeries),
			(SELECT COUNT(*) FROM rooms),
			(SELECT COUNT(*) FROM rooms WHERE status = $2),
			(SELECT COUNT(*) FROM complaints),
			(SELECT COUNT(*) FROM complaints WHERE status = $3)`
	var c repository.EntityCounts
	err := r.q.QueryRow(ctx, query, entity.RolePatient, entity.RoomStatusAvailable, entity.ComplaintStatusPending).
		Scan(&c.Patients, &c.Invoices, &c.Claims, &c.Staff, &c.Surgeries, &c.Rooms,
			&c.AvailableRooms, &c.Complaints, &c.PendingComplaints)
	if err != nil {
		return nil, storageErr("entity counts", err)
	}
	return &c, nil
}

// CountInvoicesSince counts invoices created at or after since, and sums
// the totals of those already PAID.
func (r *AnalyticsRepo) CountInvoicesSince(ctx context.Context, since time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total) FILTER (WHERE status = $2), 0)
		FROM invoices WHERE created_at >= $1`
	var count int
	var paid decimal.Decimal
	if err := r.q.QueryRow(ctx, query, since, entity.InvoiceStatusPaid).Scan(&count, &paid); err != nil {
		return 0, decimal.Zero, storageErr("count invoices since", err)
	}
	return count, paid, nil
}

// ListPendingInvoiceIDs returns ids of unpaid invoices, newest first.
func (r *AnalyticsRepo) ListPendingInvoiceIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id FROM invoices WHERE status = $1 ORDER BY id DESC`, entity.InvoiceStatusPending)
	if err != nil {
		return nil, storageErr("list pending invoices", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
