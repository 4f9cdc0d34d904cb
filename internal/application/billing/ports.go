package billing

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// HospitalInfo is the branding block printed on invoice documents.
type HospitalInfo struct {
	Name    string
	Tagline string
	Address string
	Phone   string
}

// InvoiceDocument bundles everything the renderer needs. Claim is the
// patient's freshest claim at render time and may be nil; it is a live
// view, distinct from the financial snapshot frozen inside the invoice.
type InvoiceDocument struct {
	Invoice  *entity.Invoice
	Claim    *entity.Claim
	Hospital HospitalInfo
}

// DocumentRenderer turns a finalized invoice into a printable document.
// Implementations only buffer bytes; they perform no other I/O.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// ClaimBatchWriter serializes a set of claims into an insurer submission
// file (XML batch).
type ClaimBatchWriter interface {
	WriteBatch(insurer string, claims []*entity.Claim) ([]byte, error)
}
