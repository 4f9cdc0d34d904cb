package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// ClaimRepository is the persistence port for the claims ledger.
type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	GetByID(ctx context.Context, id string) (*entity.Claim, error)
	// FindLatestByPatient returns the patient's most recently submitted claim
	// among the given statuses, or nil when none exists. Ties on submitted_at
	// break on the highest id (ids are time-ordered UUIDs, so this is stable).
	FindLatestByPatient(ctx context.Context, patientID string, statuses []string) (*entity.Claim, error)
	ListByPatient(ctx context.Context, patientID string) ([]*entity.Claim, error)
	List(ctx context.Context, limit int) ([]*entity.Claim, error)
	ListByInsurer(ctx context.Context, insurer string) ([]*entity.Claim, error)
	UpdateStatus(ctx context.Context, id, status, eobNotes string) error
}
