package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
)

// ClaimHandler serves the insurance claims ledger routes.
type ClaimHandler struct {
	uc *billing.ClaimsUseCase
}

// NewClaimHandler builds the handler.
func NewClaimHandler(uc *billing.ClaimsUseCase) *ClaimHandler {
	return &ClaimHandler{uc: uc}
}

// Submit files a new claim.
// POST /api/claims
func (h *ClaimHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	claim, err := h.uc.SubmitClaim(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(claim)
}

// Update sets a claim's status and EOB notes.
// PUT /api/claims/:id
func (h *ClaimHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateClaim(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": in.Status})
}

// List returns the newest claims.
// GET /api/claims?limit=100
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListClaims(c.Context(), c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Export streams an insurer's claim batch as an XML attachment.
// GET /api/claims/export/:insurer
func (h *ClaimHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportInsurerBatch(c.Context(), c.Params("insurer"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
