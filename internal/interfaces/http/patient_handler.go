package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/patients"
)

// PatientHandler serves the patient directory routes.
type PatientHandler struct {
	uc *patients.UseCase
}

// NewPatientHandler builds the handler.
func NewPatientHandler(uc *patients.UseCase) *PatientHandler {
	return &PatientHandler{uc: uc}
}

// Create registers a patient at the desk.
// POST /api/patients
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	patient, err := h.uc.RegisterPatient(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// List returns the merged directory from both sources.
// GET /api/patients
func (h *PatientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListPatients(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID resolves one patient from either source.
// GET /api/patients/:id
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	patient, err := h.uc.GetPatient(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(patient)
}
