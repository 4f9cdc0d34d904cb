package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable row on the invoice form.
type LineItemRequest struct {
	ItemType    string          `json:"item_type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest creates an invoice for a patient.
// InsuranceDeduction, when positive, overrides the claims-ledger lookup.
type CreateInvoiceRequest struct {
	PatientID          string            `json:"patient_id"`
	TreatingDoctor     string            `json:"treating_doctor"`
	Disease            string            `json:"disease"`
	TreatmentDate      string            `json:"treatment_date"`
	Items              []LineItemRequest `json:"items"`
	Discount           decimal.Decimal   `json:"discount"`
	Tax                decimal.Decimal   `json:"tax"`
	InsuranceDeduction decimal.Decimal   `json:"insurance_deduction"`
}

// LineItemResponse mirrors a stored line item.
type LineItemResponse struct {
	ItemType    string          `json:"item_type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// InvoiceResponse is the full invoice view returned by the API.
type InvoiceResponse struct {
	ID                    string             `json:"id"`
	PatientID             string             `json:"patient_id"`
	PatientName           string             `json:"patient_name"`
	PatientEmail          string             `json:"patient_email"`
	PatientPhone          string             `json:"patient_phone"`
	PatientAddress        string             `json:"patient_address"`
	PatientDisplayID      string             `json:"patient_display_id"`
	TreatingDoctor        string             `json:"treating_doctor,omitempty"`
	Disease               string             `json:"disease,omitempty"`
	TreatmentDate         string             `json:"treatment_date,omitempty"`
	Items                 []LineItemResponse `json:"items"`
	Subtotal              decimal.Decimal    `json:"subtotal"`
	Discount              decimal.Decimal    `json:"discount"`
	Tax                   decimal.Decimal    `json:"tax"`
	InsuranceDeduction    decimal.Decimal    `json:"insurance_deduction"`
	InsurancePolicyNumber string             `json:"insurance_policy_number,omitempty"`
	Total                 decimal.Decimal    `json:"total"`
	Status                string             `json:"status"`
	CreatedAt             time.Time          `json:"created_at"`
}
