package billing

import (
	"context"
	"fmt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

// PDFUseCase produces the downloadable document for an invoice.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	claimRepo   repository.ClaimRepository
	renderer    DocumentRenderer
	hospital    HospitalInfo
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	claimRepo repository.ClaimRepository,
	renderer DocumentRenderer,
	hospital HospitalInfo,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		claimRepo:   claimRepo,
		renderer:    renderer,
		hospital:    hospital,
	}
}

// DownloadInvoicePDF loads the invoice, looks up the patient's freshest
// claim (a live view, deliberately independent of the amounts frozen at
// invoice creation) and renders the document.
//
// Returns (bytes, filename, nil) on success or domain.ErrNotFound when
// the invoice id is unknown.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// Latest claim regardless of status: the document shows current claim
	// state, including rejections.
	claim, err := uc.claimRepo.FindLatestByPatient(ctx, inv.PatientID, allClaimStatuses())
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load claim: %w", err)
	}

	pdfBytes, err = uc.renderer.RenderInvoice(ctx, &InvoiceDocument{
		Invoice:  inv,
		Claim:    claim,
		Hospital: uc.hospital,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}

	filename = fmt.Sprintf("MedConnect_Invoice_%s.pdf", inv.ID)
	return pdfBytes, filename, nil
}

func allClaimStatuses() []string {
	return []string{
		entity.ClaimStatusSubmitted,
		entity.ClaimStatusApproved,
		entity.ClaimStatusPending,
		entity.ClaimStatusRejected,
	}
}
