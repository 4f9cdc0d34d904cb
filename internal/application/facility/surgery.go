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

// SurgeryUseCase schedules operations.
type SurgeryUseCase struct {
	surgeryRepo repository.SurgeryRepository
}

// NewSurgeryUseCase builds the use case.
func NewSurgeryUseCase(surgeryRepo repository.SurgeryRepository) *SurgeryUseCase {
	return &SurgeryUseCase{surgeryRepo: surgeryRepo}
}

// Schedule books an operation with status SCHEDULED.
func (uc *SurgeryUseCase) Schedule(ctx context.Context, in dto.ScheduleSurgeryRequest) (*dto.SurgeryResponse, error) {
	if in.PatientName == "" || in.SurgeryType == "" || in.DoctorName == "" || in.ScheduledDate == "" {
		return nil, domain.ErrInvalidInput
	}
	surgery := &entity.Surgery{
		ID:            uuid.Must(uuid.NewV7()).String(),
		PatientName:   in.PatientName,
		PatientID:     in.PatientID,
		SurgeryType:   in.SurgeryType,
		DoctorName:    in.DoctorName,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		RoomNumber:    in.RoomNumber,
		Status:        entity.SurgeryStatusScheduled,
		Notes:         in.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.surgeryRepo.Create(ctx, surgery); err != nil {
		return nil, fmt.Errorf("persist surgery: %w", err)
	}
	return toSurgeryResponse(surgery), nil
}

// List returns all scheduled surgeries.
func (uc *SurgeryUseCase) List(ctx context.Context) ([]*dto.SurgeryResponse, error) {
	list, err := uc.surgeryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapSurgeries(list), nil
}

// ListForDoctor returns one doctor's operation schedule.
func (uc *SurgeryUseCase) ListForDoctor(ctx context.Context, doctorName string) ([]*dto.SurgeryResponse, error) {
	list, err := uc.surgeryRepo.ListByDoctor(ctx, doctorName)
	if err != nil {
		return nil, err
	}
	return mapSurgeries(list), nil
}

func mapSurgeries(list []*entity.Surgery) []*dto.SurgeryResponse {
	out := make([]*dto.SurgeryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSurgeryResponse(s))
	}
	return out
}

func toSurgeryResponse(s *entity.Surgery) *dto.SurgeryResponse {
	return &dto.SurgeryResponse{
		ID:            s.ID,
		PatientName:   s.PatientName,
		PatientID:     s.PatientID,
		SurgeryType:   s.SurgeryType,
		DoctorName:    s.DoctorName,
		ScheduledDate: s.ScheduledDate,
		ScheduledTime: s.ScheduledTime,
		RoomNumber:    s.RoomNumber,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
