package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitClaimRequest files an insurance claim for a patient.
type SubmitClaimRequest struct {
	PatientID            string          `json:"patient_id"`
	Insurer              string          `json:"insurer"`
	PolicyNumber         string          `json:"policy_number"`
	ClaimAmount          decimal.Decimal `json:"claim_amount"`
	DiagnosisCode        string          `json:"diagnosis_code"`
	TreatmentDescription string          `json:"treatment_description"`
	EOBNotes             string          `json:"eob_notes"`
}

// UpdateClaimRequest changes a claim's status and EOB notes.
type UpdateClaimRequest struct {
	Status   string `json:"status"`
	EOBNotes string `json:"eob_notes"`
}

// ClaimResponse is the claim view returned by the API.
type ClaimResponse struct {
	ID                   string          `json:"id"`
	PatientID            string          `json:"patient_id"`
	PatientDisplayID     string          `json:"patient_display_id"`
	Insurer              string          `json:"insurer"`
	PolicyNumber         string          `json:"policy_number"`
	ClaimAmount          decimal.Decimal `json:"claim_amount"`
	DiagnosisCode        string          `json:"diagnosis_code,omitempty"`
	TreatmentDescription string          `json:"treatment_description,omitempty"`
	Status               string          `json:"status"`
	SubmittedAt          time.Time       `json:"submitted_at"`
	EOBNotes             string          `json:"eob_notes,omitempty"`
}
