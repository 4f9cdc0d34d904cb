package postgres

import (
	"context"
	"fmt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.SurgeryRepository = (*SurgeryRepo)(nil)

// SurgeryRepo persists scheduled surgeries.
type SurgeryRepo struct {
	q Querier
}

// NewSurgeryRepository builds the adapter.
func NewSurgeryRepository(q Querier) *SurgeryRepo {
	return &SurgeryRepo{q: q}
}

const surgeryColumns = `id, patient_name, COALESCE(patient_id, ''), surgery_type, doctor_name,
	scheduled_date, COALESCE(scheduled_time, ''), COALESCE(room_number, ''), status, COALESCE(notes, ''), created_at`

// Create persists a surgery.
func (r *SurgeryRepo) Create(ctx context.Context, s *entity.Surgery) error {
	query := `
		INSERT INTO surgeries (id, patient_name, patient_id, surgery_type, doctor_name,
		                       scheduled_date, scheduled_time, room_number, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.PatientName, nullIfEmpty(s.PatientID), s.SurgeryType, s.DoctorName,
		s.ScheduledDate, nullIfEmpty(s.ScheduledTime), nullIfEmpty(s.RoomNumber), s.Status, nullIfEmpty(s.Notes), s.CreatedAt,
	)
	if err != nil {
		return storageErr("insert surgery", err)
	}
	return nil
}

// List returns all surgeries, newest first.
func (r *SurgeryRepo) List(ctx context.Context) ([]*entity.Surgery, error) {
	return r.list(ctx, `SELECT `+surgeryColumns+` FROM surgeries ORDER BY id DESC`)
}

// ListByDoctor returns one doctor's operations.
func (r *SurgeryRepo) ListByDoctor(ctx context.Context, doctorName string) ([]*entity.Surgery, error) {
	return r.list(ctx, `SELECT `+surgeryColumns+` FROM surgeries WHERE doctor_name = $1 ORDER BY id DESC`, doctorName)
}

func (r *SurgeryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Surgery, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list surgeries", err)
	}
	defer rows.Close()

	var out []*entity.Surgery
	for rows.Next() {
		var s entity.Surgery
		if err := rows.Scan(
			&s.ID, &s.PatientName, &s.PatientID, &s.SurgeryType, &s.DoctorName,
			&s.ScheduledDate, &s.ScheduledTime, &s.RoomNumber, &s.Status, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan surgery: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
