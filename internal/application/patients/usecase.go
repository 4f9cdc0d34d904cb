package patients

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

// UseCase manages desk-registered patient records and the unified
// directory view over both patient sources.
type UseCase struct {
	patientRepo repository.PatientRepository
	directory   repository.PatientDirectory
}

// NewUseCase builds the use case.
func NewUseCase(patientRepo repository.PatientRepository, directory repository.PatientDirectory) *UseCase {
	return &UseCase{patientRepo: patientRepo, directory: directory}
}

// RegisterPatient adds a patient record at the front desk.
func (uc *UseCase) RegisterPatient(ctx context.Context, in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.FirstName == "" && in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	patient := &entity.Patient{
		ID:          uuid.Must(uuid.NewV7()).String(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		Age:         in.Age,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		InsuranceID: in.InsuranceID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.patientRepo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("persist patient: %w", err)
	}
	return toPatientResponse(patient), nil
}

// GetPatient resolves one patient from either source.
func (uc *UseCase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := uc.directory.FindPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrPatientNotFound
	}
	return toPatientResponse(patient), nil
}

// ListPatients returns the merged directory.
func (uc *UseCase) ListPatients(ctx context.Context) ([]*dto.PatientResponse, error) {
	list, err := uc.directory.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PatientResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPatientResponse(p))
	}
	return out, nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:          p.ID,
		Name:        p.DisplayName(),
		DisplayID:   p.DisplayID(),
		Gender:      p.Gender,
		Age:         p.Age,
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
		InsuranceID: p.InsuranceID,
		CreatedAt:   p.CreatedAt,
	}
}
