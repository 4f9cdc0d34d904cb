package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

// UseCase serves the dashboards and reports behind the admin and billing
// views. All queries are read-only aggregates.
type UseCase struct {
	analyticsRepo   repository.AnalyticsRepository
	invoiceRepo     repository.InvoiceRepository
	appointmentRepo repository.AppointmentRepository
	printer         *message.Printer
}

// NewUseCase builds the use case.
func NewUseCase(
	analyticsRepo repository.AnalyticsRepository,
	invoiceRepo repository.InvoiceRepository,
	appointmentRepo repository.AppointmentRepository,
) *UseCase {
	return &UseCase{
		analyticsRepo:   analyticsRepo,
		invoiceRepo:     invoiceRepo,
		appointmentRepo: appointmentRepo,
		printer:         message.NewPrinter(language.English),
	}
}

// AdminDashboard returns the headline counters.
func (uc *UseCase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	counts, err := uc.analyticsRepo.GetEntityCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardDTO{
		Patients:          counts.Patients,
		Invoices:          counts.Invoices,
		Claims:            counts.Claims,
		Staff:             counts.Staff,
		Surgeries:         counts.Surgeries,
		Rooms:             counts.Rooms,
		AvailableRooms:    counts.AvailableRooms,
		Complaints:        counts.Complaints,
		PendingComplaints: counts.PendingComplaints,
	}, nil
}

// BillingDashboard returns revenue totals with display strings formatted
// with thousands separators.
func (uc *UseCase) BillingDashboard(ctx context.Context) (*dto.BillingDashboardDTO, error) {
	counts, err := uc.analyticsRepo.GetEntityCounts(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := uc.analyticsRepo.GetBillingTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BillingDashboardDTO{
		Patients:            counts.Patients,
		Invoices:            counts.Invoices,
		Claims:              counts.Claims,
		TotalRevenue:        totals.TotalRevenue,
		PaidAmount:          totals.PaidAmount,
		PendingAmount:       totals.PendingAmount,
		TotalRevenueDisplay: uc.money(totals.TotalRevenue),
		PaidDisplay:         uc.money(totals.PaidAmount),
		PendingDisplay:      uc.money(totals.PendingAmount),
	}, nil
}

// DailyReport summarizes billing activity over the last 24 hours.
func (uc *UseCase) DailyReport(ctx context.Context) (*dto.DailyReportDTO, error) {
	since := time.Now().UTC().Add(-24 * time.Hour)
	count, paidTotal, err := uc.analyticsRepo.CountInvoicesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	pendingIDs, err := uc.analyticsRepo.ListPendingInvoiceIDs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DailyReportDTO{
		DailyCount:   count,
		PaidTotal:    paidTotal,
		PendingCount: len(pendingIDs),
		PendingIDs:   pendingIDs,
	}, nil
}

// PatientReport is a patient's own billing summary, keyed by email.
func (uc *UseCase) PatientReport(ctx context.Context, email string) (*dto.PatientReportDTO, error) {
	invoices, err := uc.invoiceRepo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.appointmentRepo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	report := &dto.PatientReportDTO{
		TotalInvoices:     len(invoices),
		TotalAmount:       decimal.Zero,
		PaidAmount:        decimal.Zero,
		PendingAmount:     decimal.Zero,
		TotalAppointments: len(appointments),
	}
	for _, inv := range invoices {
		report.TotalAmount = report.TotalAmount.Add(inv.Total)
		if inv.Status == entity.InvoiceStatusPaid {
			report.PaidAmount = report.PaidAmount.Add(inv.Total)
		} else {
			report.PendingAmount = report.PendingAmount.Add(inv.Total)
		}
	}
	return report, nil
}

// money renders "$1,234.56" style display values.
func (uc *UseCase) money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return uc.printer.Sprintf("$%.2f", f)
}
