package facility

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

// AppointmentUseCase books appointments and handles patient self-service
// requests.
type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
	directory       repository.PatientDirectory
}

// NewAppointmentUseCase builds the use case.
func NewAppointmentUseCase(appointmentRepo repository.AppointmentRepository, directory repository.PatientDirectory) *AppointmentUseCase {
	return &AppointmentUseCase{appointmentRepo: appointmentRepo, directory: directory}
}

// Book creates a staff-side appointment with status SCHEDULED.
func (uc *AppointmentUseCase) Book(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PatientID == "" || in.DoctorName == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}

	appt := &entity.Appointment{
		ID:         uuid.Must(uuid.NewV7()).String(),
		PatientID:  in.PatientID,
		DoctorName: in.DoctorName,
		Date:       in.Date,
		Time:       in.Time,
		Notes:      in.Notes,
		Status:     entity.AppointmentStatusScheduled,
		CreatedAt:  time.Now().UTC(),
	}
	if patient, err := uc.directory.FindPatient(ctx, in.PatientID); err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	} else if patient != nil {
		appt.PatientName = patient.DisplayName()
		appt.PatientEmail = patient.Email
	}

	if err := uc.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("persist appointment: %w", err)
	}
	return toAppointmentResponse(appt), nil
}

// Request files a patient's own appointment request (status REQUESTED).
// Identity comes from the authenticated principal, not the body.
func (uc *AppointmentUseCase) Request(ctx context.Context, patientEmail, patientName string, in dto.RequestAppointmentRequest) (*dto.AppointmentResponse, error) {
	if patientEmail == "" || in.DoctorName == "" {
		return nil, domain.ErrInvalidInput
	}

	appt := &entity.Appointment{
		ID:           uuid.Must(uuid.NewV7()).String(),
		PatientEmail: patientEmail,
		PatientName:  patientName,
		DoctorName:   in.DoctorName,
		Date:         in.PreferredDate,
		Time:         in.PreferredTime,
		Reason:       in.Reason,
		Status:       entity.AppointmentStatusRequested,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("persist appointment request: %w", err)
	}
	return toAppointmentResponse(appt), nil
}

// List returns all appointments for staff views.
func (uc *AppointmentUseCase) List(ctx context.Context) ([]*dto.AppointmentResponse, error) {
	list, err := uc.appointmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAppointments(list), nil
}

// ListMine returns the caller's own appointments by email.
func (uc *AppointmentUseCase) ListMine(ctx context.Context, email string) ([]*dto.AppointmentResponse, error) {
	list, err := uc.appointmentRepo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapAppointments(list), nil
}

// ListForDoctor returns a doctor's schedule.
func (uc *AppointmentUseCase) ListForDoctor(ctx context.Context, doctorName string) ([]*dto.AppointmentResponse, error) {
	list, err := uc.appointmentRepo.ListByDoctor(ctx, doctorName)
	if err != nil {
		return nil, err
	}
	return mapAppointments(list), nil
}

func mapAppointments(list []*entity.Appointment) []*dto.AppointmentResponse {
	out := make([]*dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:           a.ID,
		PatientID:    a.PatientID,
		PatientEmail: a.PatientEmail,
		PatientName:  a.PatientName,
		DoctorName:   a.DoctorName,
		Date:         a.Date,
		Time:         a.Time,
		Reason:       a.Reason,
		Notes:        a.Notes,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}
