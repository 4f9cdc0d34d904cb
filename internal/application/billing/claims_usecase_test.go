package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

type mockBatchWriter struct {
	lastInsurer string
	lastClaims  []*entity.Claim
	output      []byte
}

func (m *mockBatchWriter) WriteBatch(insurer string, claims []*entity.Claim) ([]byte, error) {
	m.lastInsurer = insurer
	m.lastClaims = claims
	return m.output, nil
}

func TestSubmitClaim_ResolvesDisplayID(t *testing.T) {
	claimRepo := &mockClaimRepo{}
	directory := newMockDirectory(&entity.Patient{ID: "u-1", FullName: "Pat Morales", PatientCode: "PID0007"})
	uc := billing.NewClaimsUseCase(claimRepo, directory, &mockBatchWriter{})

	resp, err := uc.SubmitClaim(context.Background(), dto.SubmitClaimRequest{
		PatientID:    "u-1",
		Insurer:      "Acme Health",
		PolicyNumber: "POL-1",
		ClaimAmount:  decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "PID0007", resp.PatientDisplayID, "display id comes from the directory")
	assert.Equal(t, entity.ClaimStatusSubmitted, resp.Status)
	assert.WithinDuration(t, time.Now().UTC(), resp.SubmittedAt, 5*time.Second)
}

func TestSubmitClaim_UnknownPatientKeepsRawID(t *testing.T) {
	claimRepo := &mockClaimRepo{}
	uc := billing.NewClaimsUseCase(claimRepo, newMockDirectory(), &mockBatchWriter{})

	resp, err := uc.SubmitClaim(context.Background(), dto.SubmitClaimRequest{
		PatientID:   "ghost-1",
		Insurer:     "Acme Health",
		ClaimAmount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "ghost-1", resp.PatientDisplayID)
}

func TestSubmitClaim_Validation(t *testing.T) {
	uc := billing.NewClaimsUseCase(&mockClaimRepo{}, newMockDirectory(), &mockBatchWriter{})

	_, err := uc.SubmitClaim(context.Background(), dto.SubmitClaimRequest{Insurer: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing patient id")

	_, err = uc.SubmitClaim(context.Background(), dto.SubmitClaimRequest{
		PatientID:   "u-1",
		Insurer:     "Acme",
		ClaimAmount: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative amount")
}

func TestUpdateClaim_StatusWhitelist(t *testing.T) {
	claimRepo := &mockClaimRepo{claims: []*entity.Claim{{ID: "c-1", Status: entity.ClaimStatusSubmitted}}}
	uc := billing.NewClaimsUseCase(claimRepo, newMockDirectory(), &mockBatchWriter{})

	err := uc.UpdateClaim(context.Background(), "c-1", dto.UpdateClaimRequest{
		Status:   entity.ClaimStatusApproved,
		EOBNotes: "paid in full",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusApproved, claimRepo.claims[0].Status)
	assert.Equal(t, "paid in full", claimRepo.claims[0].EOBNotes)

	err = uc.UpdateClaim(context.Background(), "c-1", dto.UpdateClaimRequest{Status: "BOGUS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportInsurerBatch_FilenameAndFiltering(t *testing.T) {
	claimRepo := &mockClaimRepo{claims: []*entity.Claim{
		{ID: "c-1", Insurer: "Acme Health", Status: entity.ClaimStatusApproved},
		{ID: "c-2", Insurer: "Other Mutual", Status: entity.ClaimStatusPending},
		{ID: "c-3", Insurer: "Acme Health", Status: entity.ClaimStatusRejected},
	}}
	writer := &mockBatchWriter{output: []byte("<ClaimBatch/>")}
	uc := billing.NewClaimsUseCase(claimRepo, newMockDirectory(), writer)

	data, filename, err := uc.ExportInsurerBatch(context.Background(), "Acme Health")
	require.NoError(t, err)
	assert.Equal(t, []byte("<ClaimBatch/>"), data)

	wantName := "Claims_Acme Health_" + time.Now().UTC().Format("20060102") + ".xml"
	assert.Equal(t, wantName, filename)

	require.Len(t, writer.lastClaims, 2, "rejected claims still export; other insurers do not")
	assert.Equal(t, "Acme Health", writer.lastInsurer)

	_, _, err = uc.ExportInsurerBatch(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
