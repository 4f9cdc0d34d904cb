package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo persists desk-registered patient records.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository builds the adapter.
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// Create persists a patient record.
func (r *PatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, gender, age, phone, email, address, insurance_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, nullIfEmpty(p.Gender), p.Age,
		nullIfEmpty(p.Phone), nullIfEmpty(p.Email), nullIfEmpty(p.Address), nullIfEmpty(p.InsuranceID), p.CreatedAt,
	)
	if err != nil {
		return storageErr("insert patient", err)
	}
	return nil
}

// GetByID returns one record, or (nil, nil) when absent.
func (r *PatientRepo) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(gender, ''), age,
		       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(insurance_id, ''), created_at
		FROM patients WHERE id = $1`
	var p entity.Patient
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Age,
		&p.Phone, &p.Email, &p.Address, &p.InsuranceID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get patient", err)
	}
	return &p, nil
}

// List returns all desk-registered patients.
func (r *PatientRepo) List(ctx context.Context) ([]*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(gender, ''), age,
		       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(insurance_id, ''), created_at
		FROM patients ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list patients", err)
	}
	defer rows.Close()

	var out []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Age,
			&p.Phone, &p.Email, &p.Address, &p.InsuranceID, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
