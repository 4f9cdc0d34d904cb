package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo stores invoices across two tables: the invoices header and
// invoice_items lines. Usable with pool or tx.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the header and all line items.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, patient_id, patient_name, patient_email, patient_phone, patient_address, patient_display_id,
		                      treating_doctor, disease, treatment_date,
		                      subtotal, discount, tax, insurance_deduction, insurance_policy_number, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.PatientID, inv.Patient.Name, inv.Patient.Email, inv.Patient.Phone, inv.Patient.Address, inv.Patient.DisplayID,
		nullIfEmpty(inv.TreatingDoctor), nullIfEmpty(inv.Disease), nullIfEmpty(inv.TreatmentDate),
		inv.Subtotal, inv.Discount, inv.Tax, inv.InsuranceDeduction, nullIfEmpty(inv.InsurancePolicyNumber),
		inv.Total, inv.Status, inv.CreatedAt,
	)
	if err != nil {
		return storageErr("insert invoice", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, position, item_type, description, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, item := range inv.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			inv.ID, i, item.ItemType, item.Description, item.Quantity, item.UnitPrice, item.TotalPrice,
		)
		if err != nil {
			return storageErr("insert invoice item", err)
		}
	}
	return nil
}

// GetByID loads a full invoice including items, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, patient_id, patient_name, patient_email, patient_phone, patient_address, patient_display_id,
		       COALESCE(treating_doctor, ''), COALESCE(disease, ''), COALESCE(treatment_date, ''),
		       subtotal, discount, tax, insurance_deduction, COALESCE(insurance_policy_number, ''),
		       total, status, created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.PatientID, &inv.Patient.Name, &inv.Patient.Email, &inv.Patient.Phone, &inv.Patient.Address, &inv.Patient.DisplayID,
		&inv.TreatingDoctor, &inv.Disease, &inv.TreatmentDate,
		&inv.Subtotal, &inv.Discount, &inv.Tax, &inv.InsuranceDeduction, &inv.InsurancePolicyNumber,
		&inv.Total, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get invoice", err)
	}

	items, err := r.itemsByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

// UpdateStatus sets the status column unconditionally.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE invoices SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return storageErr("update invoice status", err)
	}
	return nil
}

// ListByPatientEmail returns a patient's invoices, newest first. Items are
// not loaded; list views only show header fields.
func (r *InvoiceRepo) ListByPatientEmail(ctx context.Context, email string) ([]*entity.Invoice, error) {
	query := listQuery + ` WHERE patient_email = $1 ORDER BY id DESC`
	return r.list(ctx, query, email)
}

// ListRecent returns the newest invoices first.
func (r *InvoiceRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	query := listQuery + ` ORDER BY id DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

const listQuery = `
	SELECT id, patient_id, patient_name, patient_email, patient_phone, patient_address, patient_display_id,
	       COALESCE(treating_doctor, ''), COALESCE(disease, ''), COALESCE(treatment_date, ''),
	       subtotal, discount, tax, insurance_deduction, COALESCE(insurance_policy_number, ''),
	       total, status, created_at
	FROM invoices`

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list invoices", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.PatientID, &inv.Patient.Name, &inv.Patient.Email, &inv.Patient.Phone, &inv.Patient.Address, &inv.Patient.DisplayID,
			&inv.TreatingDoctor, &inv.Disease, &inv.TreatmentDate,
			&inv.Subtotal, &inv.Discount, &inv.Tax, &inv.InsuranceDeduction, &inv.InsurancePolicyNumber,
			&inv.Total, &inv.Status, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}

func (r *InvoiceRepo) itemsByInvoiceID(ctx context.Context, invoiceID string) ([]entity.LineItem, error) {
	query := `
		SELECT item_type, description, quantity, unit_price, total_price
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, storageErr("list invoice items", err)
	}
	defer rows.Close()

	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ItemType, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
