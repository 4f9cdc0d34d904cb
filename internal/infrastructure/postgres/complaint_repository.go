package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.ComplaintRepository = (*ComplaintRepo)(nil)

// ComplaintRepo persists patient complaints.
type ComplaintRepo struct {
	q Querier
}

// NewComplaintRepository builds the adapter.
func NewComplaintRepository(q Querier) *ComplaintRepo {
	return &ComplaintRepo{q: q}
}

const complaintColumns = `id, COALESCE(patient_name, ''), COALESCE(patient_email, ''), subject, description,
	priority, status, COALESCE(response, ''), created_at, updated_at`

// Create persists a complaint.
func (r *ComplaintRepo) Create(ctx context.Context, c *entity.Complaint) error {
	query := `
		INSERT INTO complaints (id, patient_name, patient_email, subject, description, priority, status, response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, nullIfEmpty(c.PatientName), nullIfEmpty(c.PatientEmail), c.Subject, c.Description,
		c.Priority, c.Status, nullIfEmpty(c.Response), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert complaint", err)
	}
	return nil
}

// List returns all complaints, newest first.
func (r *ComplaintRepo) List(ctx context.Context) ([]*entity.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY id DESC`)
}

// ListByPatientEmail returns a patient's complaints.
func (r *ComplaintRepo) ListByPatientEmail(ctx context.Context, email string) ([]*entity.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE patient_email = $1 ORDER BY id DESC`, email)
}

// UpdateStatus sets status and the admin response.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id, status, response string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE complaints SET status = $2, response = $3, updated_at = $4 WHERE id = $1`,
		id, status, nullIfEmpty(response), time.Now().UTC(),
	)
	if err != nil {
		return storageErr("update complaint", err)
	}
	return nil
}

func (r *ComplaintRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Complaint, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list complaints", err)
	}
	defer rows.Close()

	var out []*entity.Complaint
	for rows.Next() {
		var c entity.Complaint
		if err := rows.Scan(
			&c.ID, &c.PatientName, &c.PatientEmail, &c.Subject, &c.Description,
			&c.Priority, &c.Status, &c.Response, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
