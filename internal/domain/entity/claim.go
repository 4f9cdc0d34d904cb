package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim statuses. Everything except REJECTED counts as eligible for
// auto-deduction when building an invoice.
const (
	ClaimStatusSubmitted = "SUBMITTED"
	ClaimStatusApproved  = "APPROVED"
	ClaimStatusPending   = "PENDING"
	ClaimStatusRejected  = "REJECTED"
)

// EligibleClaimStatuses are the statuses whose most recent claim may be
// applied as an insurance deduction.
var EligibleClaimStatuses = []string{ClaimStatusApproved, ClaimStatusSubmitted, ClaimStatusPending}

// Claim is an insurance reimbursement request tied to a patient,
// independent of any specific invoice.
type Claim struct {
	ID                   string
	PatientID            string
	PatientDisplayID     string
	Insurer              string
	PolicyNumber         string
	ClaimAmount          decimal.Decimal
	DiagnosisCode        string
	TreatmentDescription string
	Status               string
	SubmittedAt          time.Time
	EOBNotes             string
}
