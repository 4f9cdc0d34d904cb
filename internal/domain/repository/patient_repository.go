package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// PatientRepository persists legacy flat patient records.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
}

// PatientDirectory is the unified lookup over both patient sources: the
// legacy patients table and users with the PATIENT role. Callers never see
// the duality; a miss returns (nil, nil).
type PatientDirectory interface {
	FindPatient(ctx context.Context, id string) (*entity.Patient, error)
	ListPatients(ctx context.Context) ([]*entity.Patient, error)
}
