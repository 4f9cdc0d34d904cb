package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
)

// InvoiceHandler serves the billing routes.
type InvoiceHandler struct {
	uc  *billing.CreateInvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.CreateInvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create builds an invoice for a patient.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// GetByID returns a full invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// List returns the newest invoices.
// GET /api/invoices?limit=50
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRecentInvoices(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// MarkPaid flips an invoice to PAID; repeat calls succeed.
// POST /api/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	if err := h.uc.MarkPaid(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "PAID"})
}

// DownloadPDF streams the invoice document as an attachment.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// MyInvoices returns the authenticated patient's own receipts.
// GET /api/invoices/mine
func (h *InvoiceHandler) MyInvoices(c *fiber.Ctx) error {
	list, err := h.uc.ListPatientInvoices(c.Context(), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
