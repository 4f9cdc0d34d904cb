package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

func TestDownloadInvoicePDF(t *testing.T) {
	invoices := newMockInvoiceRepo()
	claims := &mockClaimRepo{}
	require.NoError(t, invoices.Create(context.Background(), &entity.Invoice{
		ID:        "inv-7",
		PatientID: "p-1",
		Status:    entity.InvoiceStatusPending,
	}))
	// REJECTED claims are still shown on the document.
	require.NoError(t, claims.Create(context.Background(), &entity.Claim{
		ID:          "claim-r",
		PatientID:   "p-1",
		Insurer:     "Acme Health",
		Status:      entity.ClaimStatusRejected,
		SubmittedAt: time.Now().UTC(),
	}))

	renderer := &mockRenderer{output: []byte("%PDF-1.7")}
	uc := billing.NewPDFUseCase(invoices, claims, renderer, billing.HospitalInfo{Name: "MedConnect"})

	data, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-7")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)
	assert.Equal(t, "MedConnect_Invoice_inv-7.pdf", filename)

	require.NotNil(t, renderer.lastDoc)
	assert.Equal(t, "inv-7", renderer.lastDoc.Invoice.ID)
	require.NotNil(t, renderer.lastDoc.Claim)
	assert.Equal(t, "claim-r", renderer.lastDoc.Claim.ID)
	assert.Equal(t, "MedConnect", renderer.lastDoc.Hospital.Name)
}

func TestDownloadInvoicePDF_UnknownInvoice(t *testing.T) {
	uc := billing.NewPDFUseCase(newMockInvoiceRepo(), &mockClaimRepo{}, &mockRenderer{}, billing.HospitalInfo{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadInvoicePDF_NoClaims(t *testing.T) {
	invoices := newMockInvoiceRepo()
	require.NoError(t, invoices.Create(context.Background(), &entity.Invoice{
		ID:        "inv-8",
		PatientID: "p-2",
	}))

	renderer := &mockRenderer{output: []byte("pdf")}
	uc := billing.NewPDFUseCase(invoices, &mockClaimRepo{}, renderer, billing.HospitalInfo{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "inv-8")
	require.NoError(t, err)
	assert.Nil(t, renderer.lastDoc.Claim, "document renders without a claim block")
}
