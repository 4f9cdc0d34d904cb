// Package edi serializes insurance claims into the XML batch format
// insurers accept for bulk submission.
package edi

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appbilling "github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

var _ appbilling.ClaimBatchWriter = (*ClaimBatchExporter)(nil)

// ClaimBatchExporter writes claim batches as XML documents.
type ClaimBatchExporter struct {
	hospitalName string
}

// NewClaimBatchExporter builds the exporter. hospitalName goes into the
// batch header as the submitting provider.
func NewClaimBatchExporter(hospitalName string) *ClaimBatchExporter {
	return &ClaimBatchExporter{hospitalName: hospitalName}
}

// WriteBatch serializes the claims into one ClaimBatch document.
func (e *ClaimBatchExporter) WriteBatch(insurer string, claims []*entity.Claim) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	batch := doc.CreateElement("ClaimBatch")
	batch.CreateAttr("generated", time.Now().UTC().Format(time.RFC3339))

	header := batch.CreateElement("Header")
	header.CreateElement("Provider").SetText(e.hospitalName)
	header.CreateElement("Insurer").SetText(insurer)
	header.CreateElement("ClaimCount").SetText(fmt.Sprintf("%d", len(claims)))

	list := batch.CreateElement("Claims")
	for _, c := range claims {
		el := list.CreateElement("Claim")
		el.CreateAttr("id", c.ID)
		el.CreateElement("PatientRef").SetText(c.PatientDisplayID)
		el.CreateElement("PolicyNumber").SetText(c.PolicyNumber)
		el.CreateElement("Amount").SetText(c.ClaimAmount.StringFixed(2))
		if c.DiagnosisCode != "" {
			el.CreateElement("DiagnosisCode").SetText(c.DiagnosisCode)
		}
		if c.TreatmentDescription != "" {
			el.CreateElement("Treatment").SetText(c.TreatmentDescription)
		}
		el.CreateElement("Status").SetText(c.Status)
		el.CreateElement("SubmittedAt").SetText(c.SubmittedAt.UTC().Format(time.RFC3339))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("edi: write batch: %w", err)
	}
	return out, nil
}
