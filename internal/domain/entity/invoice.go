package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. An invoice is PENDING at creation and moves to PAID
// exactly once; re-marking a PAID invoice is a no-op.
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
)

// Line item types.
const (
	ItemTypeMedicine  = "MEDICINE"
	ItemTypeProcedure = "PROCEDURE"
	ItemTypeRoom      = "ROOM"
	ItemTypeOther     = "OTHER"
)

// PatientSnapshot holds the patient fields copied into an invoice at
// creation time. Later edits to the patient record never alter it.
type PatientSnapshot struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	DisplayID string // human-readable patient code, or the raw id as fallback
}

// Invoice is a billing record for a patient encounter. Amounts and items
// are immutable after creation; only Status may change.
//
// Invariant: Total = max(0, Subtotal - Discount - InsuranceDeduction) + Tax.
type Invoice struct {
	ID                    string
	PatientID             string
	Patient               PatientSnapshot
	TreatingDoctor        string
	Disease               string
	TreatmentDate         string // legacy free-text date, parsed leniently at render time
	Items                 []LineItem
	Subtotal              decimal.Decimal
	Discount              decimal.Decimal
	Tax                   decimal.Decimal
	InsuranceDeduction    decimal.Decimal
	InsurancePolicyNumber string // set only when the deduction came from a claim
	Total                 decimal.Decimal
	Status                string
	CreatedAt             time.Time
}

// LineItem is one billable unit on an invoice.
type LineItem struct {
	ItemType    string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity * UnitPrice
}
