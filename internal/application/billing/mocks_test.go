package billing_test

import (
	"context"
	"sort"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// In-memory repository doubles for the billing use cases.

type mockInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	failNext error
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (m *mockInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	cp := *inv
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *mockInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (m *mockInvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	if inv, ok := m.invoices[id]; ok {
		inv.Status = status
	}
	return nil
}

func (m *mockInvoiceRepo) ListByPatientEmail(_ context.Context, email string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.invoices {
		if inv.Patient.Email == email {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *mockInvoiceRepo) ListRecent(_ context.Context, limit int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockClaimRepo struct {
	claims []*entity.Claim
}

func (m *mockClaimRepo) Create(_ context.Context, c *entity.Claim) error {
	cp := *c
	m.claims = append(m.claims, &cp)
	return nil
}

func (m *mockClaimRepo) GetByID(_ context.Context, id string) (*entity.Claim, error) {
	for _, c := range m.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// FindLatestByPatient mirrors the SQL ordering: submitted_at DESC, id DESC.
func (m *mockClaimRepo) FindLatestByPatient(_ context.Context, patientID string, statuses []string) (*entity.Claim, error) {
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var best *entity.Claim
	for _, c := range m.claims {
		if c.PatientID != patientID || !allowed[c.Status] {
			continue
		}
		if best == nil ||
			c.SubmittedAt.After(best.SubmittedAt) ||
			(c.SubmittedAt.Equal(best.SubmittedAt) && c.ID > best.ID) {
			best = c
		}
	}
	return best, nil
}

func (m *mockClaimRepo) ListByPatient(_ context.Context, patientID string) ([]*entity.Claim, error) {
	var out []*entity.Claim
	for _, c := range m.claims {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClaimRepo) List(_ context.Context, limit int) ([]*entity.Claim, error) {
	if len(m.claims) > limit {
		return m.claims[:limit], nil
	}
	return m.claims, nil
}

func (m *mockClaimRepo) ListByInsurer(_ context.Context, insurer string) ([]*entity.Claim, error) {
	var out []*entity.Claim
	for _, c := range m.claims {
		if c.Insurer == insurer {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClaimRepo) UpdateStatus(_ context.Context, id, status, eobNotes string) error {
	for _, c := range m.claims {
		if c.ID == id {
			c.Status = status
			c.EOBNotes = eobNotes
		}
	}
	return nil
}

type mockDirectory struct {
	patients map[string]*entity.Patient
}

func newMockDirectory(patients ...*entity.Patient) *mockDirectory {
	m := &mockDirectory{patients: make(map[string]*entity.Patient)}
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockDirectory) FindPatient(_ context.Context, id string) (*entity.Patient, error) {
	return m.patients[id], nil
}

func (m *mockDirectory) ListPatients(_ context.Context) ([]*entity.Patient, error) {
	var out []*entity.Patient
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

type mockRenderer struct {
	lastDoc *billing.InvoiceDocument
	output  []byte
	err     error
}

func (m *mockRenderer) RenderInvoice(_ context.Context, doc *billing.InvoiceDocument) ([]byte, error) {
	m.lastDoc = doc
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
