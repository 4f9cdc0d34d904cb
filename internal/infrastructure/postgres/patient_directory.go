package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.PatientDirectory = (*PatientDirectory)(nil)

// PatientDirectory is the unified lookup over both patient sources: the
// patients table and users with the PATIENT role. Self-registered users
// come back as Patient records with FullName and PatientCode set.
type PatientDirectory struct {
	q Querier
}

// NewPatientDirectory builds the directory.
func NewPatientDirectory(q Querier) *PatientDirectory {
	return &PatientDirectory{q: q}
}

// FindPatient checks the patients table first, then patient-role users.
// A miss in both sources returns (nil, nil).
func (d *PatientDirectory) FindPatient(ctx context.Context, id string) (*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(gender, ''), age,
		       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(insurance_id, ''), created_at
		FROM patients WHERE id = $1`
	var p entity.Patient
	err := d.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Age,
		&p.Phone, &p.Email, &p.Address, &p.InsuranceID, &p.CreatedAt,
	)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storageErr("directory: get patient", err)
	}

	userQuery := `
		SELECT id, full_name, COALESCE(patient_code, ''), COALESCE(gender, ''),
		       COALESCE(phone, ''), email, COALESCE(address, ''), created_at
		FROM users WHERE id = $1 AND role = $2`
	var u entity.Patient
	err = d.q.QueryRow(ctx, userQuery, id, entity.RolePatient).Scan(
		&u.ID, &u.FullName, &u.PatientCode, &u.Gender,
		&u.Phone, &u.Email, &u.Address, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("directory: get patient user", err)
	}
	return &u, nil
}

// ListPatients merges both sources, newest first within each source.
func (d *PatientDirectory) ListPatients(ctx context.Context) ([]*entity.Patient, error) {
	query := `
		SELECT id, first_name, last_name, '' AS full_name, '' AS patient_code, COALESCE(gender, ''), age,
		       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(insurance_id, ''), created_at
		FROM patients
		UNION ALL
		SELECT id, '', '', full_name, COALESCE(patient_code, ''), COALESCE(gender, ''), 0,
		       COALESCE(phone, ''), email, COALESCE(address, ''), '', created_at
		FROM users WHERE role = $1
		ORDER BY created_at DESC`
	rows, err := d.q.Query(ctx, query, entity.RolePatient)
	if err != nil {
		return nil, storageErr("directory: list patients", err)
	}
	defer rows.Close()

	var out []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.FullName, &p.PatientCode, &p.Gender, &p.Age,
			&p.Phone, &p.Email, &p.Address, &p.InsuranceID, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan directory patient: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
