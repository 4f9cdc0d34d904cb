package postgres

import (
	"context"
	"fmt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo persists appointments and self-service requests.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository builds the adapter.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `id, COALESCE(patient_id, ''), COALESCE(patient_email, ''), COALESCE(patient_name, ''),
	doctor_name, appt_date, COALESCE(appt_time, ''), COALESCE(reason, ''), COALESCE(notes, ''), status, created_at`

// Create persists an appointment.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, patient_email, patient_name, doctor_name,
		                          appt_date, appt_time, reason, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, nullIfEmpty(a.PatientID), nullIfEmpty(a.PatientEmail), nullIfEmpty(a.PatientName), a.DoctorName,
		a.Date, nullIfEmpty(a.Time), nullIfEmpty(a.Reason), nullIfEmpty(a.Notes), a.Status, a.CreatedAt,
	)
	if err != nil {
		return storageErr("insert appointment", err)
	}
	return nil
}

// List returns all appointments, newest first.
func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY id DESC`)
}

// ListByPatientEmail returns a patient's appointments.
func (r *AppointmentRepo) ListByPatientEmail(ctx context.Context, email string) ([]*entity.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE patient_email = $1 ORDER BY id DESC`, email)
}

// ListByDoctor returns one doctor's schedule.
func (r *AppointmentRepo) ListByDoctor(ctx context.Context, doctorName string) ([]*entity.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE doctor_name = $1 ORDER BY id DESC`, doctorName)
}

func (r *AppointmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list appointments", err)
	}
	defer rows.Close()

	var out []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.PatientID, &a.PatientEmail, &a.PatientName,
			&a.DoctorName, &a.Date, &a.Time, &a.Reason, &a.Notes, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
