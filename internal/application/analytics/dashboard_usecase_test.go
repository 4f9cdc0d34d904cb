package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/analytics"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type stubAnalyticsRepo struct {
	totals     repository.BillingTotals
	counts     repository.EntityCounts
	daily      int
	dailyPaid  decimal.Decimal
	pendingIDs []string
}

func (s *stubAnalyticsRepo) GetBillingTotals(_ context.Context) (*repository.BillingTotals, error) {
	t := s.totals
	return &t, nil
}

func (s *stubAnalyticsRepo) GetEntityCounts(_ context.Context) (*repository.EntityCounts, error) {
	c := s.counts
	return &c, nil
}

func (s *stubAnalyticsRepo) CountInvoicesSince(_ context.Context, _ time.Time) (int, decimal.Decimal, error) {
	return s.daily, s.dailyPaid, nil
}

func (s *stubAnalyticsRepo) ListPendingInvoiceIDs(_ context.Context) ([]string, error) {
	return s.pendingIDs, nil
}

type stubInvoiceRepo struct {
	byEmail map[string][]*entity.Invoice
}

func (s *stubInvoiceRepo) Create(_ context.Context, _ *entity.Invoice) error { return nil }
func (s *stubInvoiceRepo) GetByID(_ context.Context, _ string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }
func (s *stubInvoiceRepo) ListByPatientEmail(_ context.Context, email string) ([]*entity.Invoice, error) {
	return s.byEmail[email], nil
}
func (s *stubInvoiceRepo) ListRecent(_ context.Context, _ int) ([]*entity.Invoice, error) {
	return nil, nil
}

type stubAppointmentRepo struct {
	byEmail map[string][]*entity.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, _ *entity.Appointment) error { return nil }
func (s *stubAppointmentRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) ListByPatientEmail(_ context.Context, email string) ([]*entity.Appointment, error) {
	return s.byEmail[email], nil
}
func (s *stubAppointmentRepo) ListByDoctor(_ context.Context, _ string) ([]*entity.Appointment, error) {
	return nil, nil
}

func TestBillingDashboard_DisplayFormatting(t *testing.T) {
	repo := &stubAnalyticsRepo{
		totals: repository.BillingTotals{
			TotalRevenue:  dec("1234567.5"),
			PaidAmount:    dec("1000000"),
			PendingAmount: dec("234567.5"),
		},
		counts: repository.EntityCounts{Patients: 10, Invoices: 42, Claims: 7},
	}
	uc := analytics.NewUseCase(repo, &stubInvoiceRepo{}, &stubAppointmentRepo{})

	dash, err := uc.BillingDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$1,234,567.50", dash.TotalRevenueDisplay)
	assert.Equal(t, "$1,000,000.00", dash.PaidDisplay)
	assert.Equal(t, "$234,567.50", dash.PendingDisplay)
	assert.Equal(t, 42, dash.Invoices)
}

func TestDailyReport(t *testing.T) {
	repo := &stubAnalyticsRepo{
		daily:      5,
		dailyPaid:  dec("320"),
		pendingIDs: []string{"inv-1", "inv-2"},
	}
	uc := analytics.NewUseCase(repo, &stubInvoiceRepo{}, &stubAppointmentRepo{})

	report, err := uc.DailyReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.DailyCount)
	assert.True(t, report.PaidTotal.Equal(dec("320")))
	assert.Equal(t, 2, report.PendingCount)
	assert.Equal(t, []string{"inv-1", "inv-2"}, report.PendingIDs)
}

func TestPatientReport_SplitsPaidAndPending(t *testing.T) {
	invoices := &stubInvoiceRepo{byEmail: map[string][]*entity.Invoice{
		"asha@example.com": {
			{Total: dec("100"), Status: entity.InvoiceStatusPaid},
			{Total: dec("40"), Status: entity.InvoiceStatusPending},
			{Total: dec("60"), Status: entity.InvoiceStatusPending},
		},
	}}
	appointments := &stubAppointmentRepo{byEmail: map[string][]*entity.Appointment{
		"asha@example.com": {{}, {}},
	}}
	uc := analytics.NewUseCase(&stubAnalyticsRepo{}, invoices, appointments)

	report, err := uc.PatientReport(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalInvoices)
	assert.True(t, report.TotalAmount.Equal(dec("200")))
	assert.True(t, report.PaidAmount.Equal(dec("100")))
	assert.True(t, report.PendingAmount.Equal(dec("100")))
	assert.Equal(t, 2, report.TotalAppointments)
}
