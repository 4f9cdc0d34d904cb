// Package pdf renders hospital invoices as printable documents.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hospital name + tagline │ Invoice no. + Date       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PATIENT: name, id, contact │ Doctor / Diagnosis            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Type | Description | Qty | Unit Price | Amount      │
//	│  (repeated table header on every page)                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / Insurance / Tax / TOTAL DUE  │
//	│  INSURANCE: policy + claim status block                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appbilling.DocumentRenderer = (*MarotoInvoiceRenderer)(nil)

// MarotoInvoiceRenderer implements billing.DocumentRenderer with Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer builds the renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer { return &MarotoInvoiceRenderer{} }

// RenderInvoice generates the PDF and returns its bytes. Long item lists
// flow onto explicit extra pages, each repeating the table header.
func (g *MarotoInvoiceRenderer) RenderInvoice(_ context.Context, doc *appbilling.InvoiceDocument) ([]byte, error) {
	inv := doc.Invoice

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.ID, true).
		WithAuthor(doc.Hospital.Name, true).
		Build()

	m := maroto.New(cfg)

	pages := paginateItems(inv.Items)
	for i, pageItems := range pages {
		p := page.New()
		if i == 0 {
			p.Add(headerRow(inv, doc.Hospital))
			p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
			p.Add(patientRow(inv))
			p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		} else {
			p.Add(continuationRow(inv, i+1, len(pages)))
		}
		p.Add(tableHeaderRow())
		for _, r := range tableItemRows(pageItems) {
			p.Add(r)
		}
		if i == len(pages)-1 {
			p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
			p.Add(totalsRow(inv))
			for _, r := range insuranceRows(inv, doc.Claim) {
				p.Add(r)
			}
			p.Add(footerRow(doc.Hospital))
		}
		m.AddPages(p)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: hospital branding on the left, invoice number and date right.
func headerRow(inv *entity.Invoice, hospital appbilling.HospitalInfo) core.Row {
	date := parseTreatmentDate(inv.TreatmentDate, time.Now()).Format("Jan 02, 2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(hospital.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(hospital.Tagline, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(hospital.Address+"  |  "+hospital.Phone, props.Text{Size: 7, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+inv.ID, props.Text{Size: 8, Align: align.Right, Top: 8}),
			text.New("Date: "+date, props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

// patientRow: patient snapshot plus doctor and diagnosis.
func patientRow(inv *entity.Invoice) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(inv.Patient.Name, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Patient ID: %s   |   %s   |   %s",
				nonEmpty(inv.Patient.DisplayID, "-"),
				nonEmpty(inv.Patient.Email, "-"),
				nonEmpty(inv.Patient.Phone, "-"),
			), props.Text{Size: 7, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Doctor: "+nonEmpty(inv.TreatingDoctor, "-"), props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New("Diagnosis: "+nonEmpty(inv.Disease, "-"), props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

// continuationRow: slim header for pages after the first.
func continuationRow(inv *entity.Invoice, pageNo, pageCount int) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Invoice "+inv.ID+" (continued)", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New(fmt.Sprintf("Page %d of %d", pageNo, pageCount), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: colorGray,
		})),
	)
}

// tableHeaderRow: repeated at the top of the item table on every page.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Type", 2, align.Left),
		h("Description", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per line item.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(it.ItemType, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(5).Add(text.New(truncateDescription(it.Description), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money(it.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: amounts block aligned right; tax applies after the clamp.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(34).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:"),
			label("Discount:"),
			label("Insurance deduction:"),
			label("Tax:"),
			text.New("TOTAL DUE:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: 24,
			}),
		),
		col.New(3).Add(
			value(money(inv.Subtotal)),
			value("-"+money(inv.Discount)),
			value("-"+money(inv.InsuranceDeduction)),
			value("+"+money(inv.Tax)),
			text.New(money(inv.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 24,
			}),
		),
	)
}

// insuranceRows: policy number plus the patient's current claim state.
func insuranceRows(inv *entity.Invoice, claim *entity.Claim) []core.Row {
	if inv.InsurancePolicyNumber == "" && claim == nil {
		return nil
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("INSURANCE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	if inv.InsurancePolicyNumber != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Policy number: "+inv.InsurancePolicyNumber, props.Text{Size: 8, Top: 1}),
		)))
	}
	if claim != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Latest claim: %s  |  %s  |  %s  (%s)",
				claim.Insurer, money(claim.ClaimAmount), claim.Status,
				claim.SubmittedAt.Format("Jan 02, 2006"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

// footerRow: closing note.
func footerRow(hospital appbilling.HospitalInfo) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Thank you for choosing "+hospital.Name+". Keep this document for your records.",
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 4}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
