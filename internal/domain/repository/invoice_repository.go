package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices and their items.
// Invoices are immutable after Create except for the status column.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// UpdateStatus sets the status unconditionally; re-marking a PAID
	// invoice PAID is a no-op.
	UpdateStatus(ctx context.Context, id, status string) error
	ListByPatientEmail(ctx context.Context, email string) ([]*entity.Invoice, error)
	// ListRecent returns the newest invoices first (ids are time-ordered).
	ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error)
}
