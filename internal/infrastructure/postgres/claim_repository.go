package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.ClaimRepository = (*ClaimRepo)(nil)

// ClaimRepo persists the insurance claims ledger.
type ClaimRepo struct {
	q Querier
}

// NewClaimRepository builds the adapter.
func NewClaimRepository(q Querier) *ClaimRepo {
	return &ClaimRepo{q: q}
}

const claimColumns = `id, patient_id, patient_display_id, insurer, policy_number, claim_amount,
	COALESCE(diagnosis_code, ''), COALESCE(treatment_description, ''), status, submitted_at, COALESCE(eob_notes, '')`

// Create persists a claim.
func (r *ClaimRepo) Create(ctx context.Context, c *entity.Claim) error {
	query := `
		INSERT INTO claims (id, patient_id, patient_display_id, insurer, policy_number, claim_amount,
		                    diagnosis_code, treatment_description, status, submitted_at, eob_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.PatientID, c.PatientDisplayID, c.Insurer, c.PolicyNumber, c.ClaimAmount,
		nullIfEmpty(c.DiagnosisCode), nullIfEmpty(c.TreatmentDescription), c.Status, c.SubmittedAt, nullIfEmpty(c.EOBNotes),
	)
	if err != nil {
		return storageErr("insert claim", err)
	}
	return nil
}

// GetByID returns one claim, or (nil, nil) when absent.
func (r *ClaimRepo) GetByID(ctx context.Context, id string) (*entity.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// FindLatestByPatient returns the patient's most recently submitted claim
// among the given statuses. Ties on submitted_at break on the highest id,
// which is stable because ids are time-ordered.
func (r *ClaimRepo) FindLatestByPatient(ctx context.Context, patientID string, statuses []string) (*entity.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims
		WHERE patient_id = $1 AND status = ANY($2)
		ORDER BY submitted_at DESC, id DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, patientID, statuses))
}

// ListByPatient returns a patient's claims, newest first.
func (r *ClaimRepo) ListByPatient(ctx context.Context, patientID string) ([]*entity.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE patient_id = $1 ORDER BY submitted_at DESC, id DESC`
	return r.list(ctx, query, patientID)
}

// List returns the newest claims.
func (r *ClaimRepo) List(ctx context.Context, limit int) ([]*entity.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims ORDER BY submitted_at DESC, id DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

// ListByInsurer returns all of one insurer's claims for batch export.
func (r *ClaimRepo) ListByInsurer(ctx context.Context, insurer string) ([]*entity.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE insurer = $1 ORDER BY submitted_at DESC, id DESC`
	return r.list(ctx, query, insurer)
}

// UpdateStatus sets status and EOB notes.
func (r *ClaimRepo) UpdateStatus(ctx context.Context, id, status, eobNotes string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE claims SET status = $2, eob_notes = $3 WHERE id = $1`,
		id, status, nullIfEmpty(eobNotes),
	)
	if err != nil {
		return storageErr("update claim status", err)
	}
	return nil
}

func (r *ClaimRepo) scanOne(row pgx.Row) (*entity.Claim, error) {
	var c entity.Claim
	err := row.Scan(
		&c.ID, &c.PatientID, &c.PatientDisplayID, &c.Insurer, &c.PolicyNumber, &c.ClaimAmount,
		&c.DiagnosisCode, &c.TreatmentDescription, &c.Status, &c.SubmittedAt, &c.EOBNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get claim", err)
	}
	return &c, nil
}

func (r *ClaimRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Claim, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list claims", err)
	}
	defer rows.Close()

	var out []*entity.Claim
	for rows.Next() {
		var c entity.Claim
		if err := rows.Scan(
			&c.ID, &c.PatientID, &c.PatientDisplayID, &c.Insurer, &c.PolicyNumber, &c.ClaimAmount,
			&c.DiagnosisCode, &c.TreatmentDescription, &c.Status, &c.SubmittedAt, &c.EOBNotes,
		); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
