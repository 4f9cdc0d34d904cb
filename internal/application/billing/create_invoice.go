package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	domainbilling "github.com/SharuLucky21/Hospital-Management-System/internal/domain/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
)

// CreateInvoiceUseCase builds and persists invoices: resolves the patient
// snapshot, applies the insurance deduction from the claims ledger, and
// computes totals.
type CreateInvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	claimRepo   repository.ClaimRepository
	directory   repository.PatientDirectory
	log         *logger.Logger
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	claimRepo repository.ClaimRepository,
	directory repository.PatientDirectory,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		claimRepo:   claimRepo,
		directory:   directory,
		log:         log,
	}
}

// CreateInvoice creates a PENDING invoice for a patient.
//
// A missing patient is not fatal: billing stays available for unknown ids
// and the snapshot fields are left empty. An explicit positive
// insurance_deduction bypasses the claims ledger and leaves the policy
// number unset; otherwise the most recently submitted eligible claim
// (APPROVED/SUBMITTED/PENDING) supplies both deduction and policy number.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.PatientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	for _, req := range in.Items {
		itemType := req.ItemType
		if itemType == "" {
			itemType = entity.ItemTypeOther
		}
		items = append(items, entity.LineItem{
			ItemType:    itemType,
			Description: req.Description,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			TotalPrice:  domainbilling.ItemTotal(req.Quantity, req.UnitPrice),
		})
	}

	// Patient snapshot, lenient on misses.
	snapshot := entity.PatientSnapshot{DisplayID: in.PatientID}
	patient, err := uc.directory.FindPatient(ctx, in.PatientID)
	if err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	}
	if patient == nil {
		uc.log.Warn().Str("patient_id", in.PatientID).
			Msg("patient not found in directory, billing with empty snapshot")
	} else {
		snapshot = entity.PatientSnapshot{
			Name:      patient.DisplayName(),
			Email:     patient.Email,
			Phone:     patient.Phone,
			Address:   patient.Address,
			DisplayID: patient.DisplayID(),
		}
	}

	// Insurance deduction: explicit value wins, else latest eligible claim.
	deduction := decimal.Zero
	policyNumber := ""
	if in.InsuranceDeduction.GreaterThan(decimal.Zero) {
		deduction = in.InsuranceDeduction
	} else {
		claim, err := uc.claimRepo.FindLatestByPatient(ctx, in.PatientID, entity.EligibleClaimStatuses)
		if err != nil {
			return nil, fmt.Errorf("find latest claim: %w", err)
		}
		if claim != nil {
			deduction = claim.ClaimAmount
			policyNumber = claim.PolicyNumber
		}
	}

	subtotal, total, err := domainbilling.ComputeTotals(items, in.Discount, in.Tax, deduction)
	if err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:                    uuid.Must(uuid.NewV7()).String(),
		PatientID:             in.PatientID,
		Patient:               snapshot,
		TreatingDoctor:        in.TreatingDoctor,
		Disease:               in.Disease,
		TreatmentDate:         in.TreatmentDate,
		Items:                 items,
		Subtotal:              subtotal,
		Discount:              in.Discount,
		Tax:                   in.Tax,
		InsuranceDeduction:    deduction,
		InsurancePolicyNumber: policyNumber,
		Total:                 total,
		Status:                entity.InvoiceStatusPending,
		CreatedAt:             time.Now().UTC(),
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("patient_id", inv.PatientID).
		Str("total", inv.Total.StringFixed(2)).
		Msg("invoice created")

	return toInvoiceResponse(inv), nil
}

// MarkPaid flips the invoice to PAID. The update is unconditional, so
// repeated calls converge on the same terminal state without error.
func (uc *CreateInvoiceUseCase) MarkPaid(ctx context.Context, invoiceID string) error {
	if invoiceID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.invoiceRepo.UpdateStatus(ctx, invoiceID, entity.InvoiceStatusPaid); err != nil {
		return err
	}
	uc.log.Info().Str("invoice_id", invoiceID).Msg("invoice marked paid")
	return nil
}

// GetInvoice returns the full invoice view.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// ListRecentInvoices returns the newest invoices for billing views.
func (uc *CreateInvoiceUseCase) ListRecentInvoices(ctx context.Context, limit int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.invoiceRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// ListPatientInvoices returns a patient's own receipts by email.
func (uc *CreateInvoiceUseCase) ListPatientInvoices(ctx context.Context, email string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:                    inv.ID,
		PatientID:             inv.PatientID,
		PatientName:           inv.Patient.Name,
		PatientEmail:          inv.Patient.Email,
		PatientPhone:          inv.Patient.Phone,
		PatientAddress:        inv.Patient.Address,
		PatientDisplayID:      inv.Patient.DisplayID,
		TreatingDoctor:        inv.TreatingDoctor,
		Disease:               inv.Disease,
		TreatmentDate:         inv.TreatmentDate,
		Items:                 make([]dto.LineItemResponse, 0, len(inv.Items)),
		Subtotal:              inv.Subtotal,
		Discount:              inv.Discount,
		Tax:                   inv.Tax,
		InsuranceDeduction:    inv.InsuranceDeduction,
		InsurancePolicyNumber: inv.InsurancePolicyNumber,
		Total:                 inv.Total,
		Status:                inv.Status,
		CreatedAt:             inv.CreatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.LineItemResponse{
			ItemType:    it.ItemType,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}
