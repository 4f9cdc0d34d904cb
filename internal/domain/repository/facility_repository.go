package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// AppointmentRepository persists appointments and self-service requests.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	List(ctx context.Context) ([]*entity.Appointment, error)
	ListByPatientEmail(ctx context.Context, email string) ([]*entity.Appointment, error)
	ListByDoctor(ctx context.Context, doctorName string) ([]*entity.Appointment, error)
}

// ComplaintRepository persists patient complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	List(ctx context.Context) ([]*entity.Complaint, error)
	ListByPatientEmail(ctx context.Context, email string) ([]*entity.Complaint, error)
	UpdateStatus(ctx context.Context, id, status, response string) error
}

// SurgeryRepository persists scheduled surgeries.
type SurgeryRepository interface {
	Create(ctx context.Context, surgery *entity.Surgery) error
	List(ctx context.Context) ([]*entity.Surgery, error)
	ListByDoctor(ctx context.Context, doctorName string) ([]*entity.Surgery, error)
}

// RoomRepository persists hospital rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	List(ctx context.Context) ([]*entity.Room, error)
	UpdateStatus(ctx context.Context, id, status, notes string) error
}
