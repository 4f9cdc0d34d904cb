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

// ComplaintUseCase files and resolves patient complaints.
type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
}

// NewComplaintUseCase builds the use case.
func NewComplaintUseCase(complaintRepo repository.ComplaintRepository) *ComplaintUseCase {
	return &ComplaintUseCase{complaintRepo: complaintRepo}
}

// File records a new complaint with status PENDING.
func (uc *ComplaintUseCase) File(ctx context.Context, in dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	if in.Subject == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.ComplaintPriorityMedium
	}
	switch priority {
	case entity.ComplaintPriorityLow, entity.ComplaintPriorityMedium, entity.ComplaintPriorityHigh:
	default:
		return nil, fmt.Errorf("%w: priority %q", domain.ErrInvalidInput, in.Priority)
	}

	now := time.Now().UTC()
	complaint := &entity.Complaint{
		ID:           uuid.Must(uuid.NewV7()).String(),
		PatientName:  in.PatientName,
		PatientEmail: in.PatientEmail,
		Subject:      in.Subject,
		Description:  in.Description,
		Priority:     priority,
		Status:       entity.ComplaintStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("persist complaint: %w", err)
	}
	return toComplaintResponse(complaint), nil
}

// Resolve updates a complaint's status and admin response.
func (uc *ComplaintUseCase) Resolve(ctx context.Context, id string, in dto.UpdateComplaintRequest) error {
	status := in.Status
	if status == "" {
		status = entity.ComplaintStatusResolved
	}
	switch status {
	case entity.ComplaintStatusPending, entity.ComplaintStatusResolved:
	default:
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.complaintRepo.UpdateStatus(ctx, id, status, in.Response)
}

// List returns all complaints for administration.
func (uc *ComplaintUseCase) List(ctx context.Context) ([]*dto.ComplaintResponse, error) {
	list, err := uc.complaintRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapComplaints(list), nil
}

// ListMine returns the caller's own complaints by email.
func (uc *ComplaintUseCase) ListMine(ctx context.Context, email string) ([]*dto.ComplaintResponse, error) {
	list, err := uc.complaintRepo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapComplaints(list), nil
}

func mapComplaints(list []*entity.Complaint) []*dto.ComplaintResponse {
	out := make([]*dto.ComplaintResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toComplaintResponse(c))
	}
	return out
}

func toComplaintResponse(c *entity.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		ID:           c.ID,
		PatientName:  c.PatientName,
		PatientEmail: c.PatientEmail,
		Subject:      c.Subject,
		Description:  c.Description,
		Priority:     c.Priority,
		Status:       c.Status,
		Response:     c.Response,
		CreatedAt:    c.CreatedAt,
	}
}
