package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

// ClaimsUseCase manages the insurance claims ledger. Claims belong to a
// patient, never to a specific invoice.
type ClaimsUseCase struct {
	claimRepo repository.ClaimRepository
	directory repository.PatientDirectory
	batch     ClaimBatchWriter
}

// NewClaimsUseCase builds the use case.
func NewClaimsUseCase(claimRepo repository.ClaimRepository, directory repository.PatientDirectory, batch ClaimBatchWriter) *ClaimsUseCase {
	return &ClaimsUseCase{claimRepo: claimRepo, directory: directory, batch: batch}
}

// SubmitClaim files a new claim with status SUBMITTED.
func (uc *ClaimsUseCase) SubmitClaim(ctx context.Context, in dto.SubmitClaimRequest) (*dto.ClaimResponse, error) {
	if in.PatientID == "" || in.Insurer == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ClaimAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	// Display id from either patient source; raw id when unknown.
	displayID := in.PatientID
	if patient, err := uc.directory.FindPatient(ctx, in.PatientID); err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	} else if patient != nil {
		displayID = patient.DisplayID()
	}

	claim := &entity.Claim{
		ID:                   uuid.Must(uuid.NewV7()).String(),
		PatientID:            in.PatientID,
		PatientDisplayID:     displayID,
		Insurer:              in.Insurer,
		PolicyNumber:         in.PolicyNumber,
		ClaimAmount:          in.ClaimAmount,
		DiagnosisCode:        in.DiagnosisCode,
		TreatmentDescription: in.TreatmentDescription,
		Status:               entity.ClaimStatusSubmitted,
		SubmittedAt:          time.Now().UTC(),
		EOBNotes:             in.EOBNotes,
	}
	if err := uc.claimRepo.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("persist claim: %w", err)
	}
	return toClaimResponse(claim), nil
}

// UpdateClaim sets status and EOB notes on an existing claim.
func (uc *ClaimsUseCase) UpdateClaim(ctx context.Context, claimID string, in dto.UpdateClaimRequest) error {
	status := in.Status
	if status == "" {
		status = entity.ClaimStatusSubmitted
	}
	switch status {
	case entity.ClaimStatusSubmitted, entity.ClaimStatusApproved, entity.ClaimStatusPending, entity.ClaimStatusRejected:
	default:
		return domain.ErrInvalidInput
	}
	return uc.claimRepo.UpdateStatus(ctx, claimID, status, in.EOBNotes)
}

// ListClaims returns the newest claims first.
func (uc *ClaimsUseCase) ListClaims(ctx context.Context, limit int) ([]*dto.ClaimResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	claims, err := uc.claimRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, toClaimResponse(c))
	}
	return out, nil
}

// ExportInsurerBatch serializes all of an insurer's claims into a
// submission file. Returns (bytes, filename, error).
func (uc *ClaimsUseCase) ExportInsurerBatch(ctx context.Context, insurer string) ([]byte, string, error) {
	if insurer == "" {
		return nil, "", domain.ErrInvalidInput
	}
	claims, err := uc.claimRepo.ListByInsurer(ctx, insurer)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.batch.WriteBatch(insurer, claims)
	if err != nil {
		return nil, "", fmt.Errorf("write claim batch: %w", err)
	}
	filename := fmt.Sprintf("Claims_%s_%s.xml", insurer, time.Now().UTC().Format("20060102"))
	return data, filename, nil
}

func toClaimResponse(c *entity.Claim) *dto.ClaimResponse {
	return &dto.ClaimResponse{
		ID:                   c.ID,
		PatientID:            c.PatientID,
		PatientDisplayID:     c.PatientDisplayID,
		Insurer:              c.Insurer,
		PolicyNumber:         c.PolicyNumber,
		ClaimAmount:          c.ClaimAmount,
		DiagnosisCode:        c.DiagnosisCode,
		TreatmentDescription: c.TreatmentDescription,
		Status:               c.Status,
		SubmittedAt:          c.SubmittedAt,
		EOBNotes:             c.EOBNotes,
	}
}
