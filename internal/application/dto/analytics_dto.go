package dto

import "github.com/shopspring/decimal"

// AdminDashboardDTO is the headline view for administrators.
type AdminDashboardDTO struct {
	Patients          int `json:"patients"`
	Invoices          int `json:"invoices"`
	Claims            int `json:"claims"`
	Staff             int `json:"staff"`
	Surgeries         int `json:"surgeries"`
	Rooms             int `json:"rooms"`
	AvailableRooms    int `json:"available_rooms"`
	Complaints        int `json:"complaints"`
	PendingComplaints int `json:"pending_complaints"`
}

// BillingDashboardDTO is the revenue view for billing staff. Display
// fields carry thousands separators for the UI.
type BillingDashboardDTO struct {
	Patients            int             `json:"patients"`
	Invoices            int             `json:"invoices"`
	Claims              int             `json:"claims"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	PendingAmount       decimal.Decimal `json:"pending_amount"`
	TotalRevenueDisplay string          `json:"total_revenue_display"`
	PaidDisplay         string          `json:"paid_display"`
	PendingDisplay      string          `json:"pending_display"`
}

// DailyReportDTO summarizes the last 24 hours of billing.
type DailyReportDTO struct {
	DailyCount   int             `json:"daily_count"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	PendingCount int             `json:"pending_count"`
	PendingIDs   []string        `json:"pending_ids"`
}

// PatientReportDTO is a patient's own billing summary.
type PatientReportDTO struct {
	TotalInvoices     int             `json:"total_invoices"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	TotalAppointments int             `json:"total_appointments"`
}
