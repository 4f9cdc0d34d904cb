package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/facility"
)

// AppointmentHandler serves booking and self-service request routes.
type AppointmentHandler struct {
	uc *facility.AppointmentUseCase
}

// NewAppointmentHandler builds the handler.
func NewAppointmentHandler(uc *facility.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book creates a staff-side appointment.
// POST /api/appointments
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	appt, err := h.uc.Book(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

// Request files the authenticated patient's own appointment request.
// Identity comes from the token, never the body.
// POST /api/appointments/request
func (h *AppointmentHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	appt, err := h.uc.Request(c.Context(), GetEmail(c), "", in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

// List returns all appointments.
// GET /api/appointments
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Mine returns the authenticated patient's appointments.
// GET /api/appointments/mine
func (h *AppointmentHandler) Mine(c *fiber.Ctx) error {
	list, err := h.uc.ListMine(c.Context(), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ForDoctor returns one doctor's schedule.
// GET /api/appointments/doctor/:name
func (h *AppointmentHandler) ForDoctor(c *fiber.Ctx) error {
	list, err := h.uc.ListForDoctor(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ComplaintHandler serves complaint routes.
type ComplaintHandler struct {
	uc *facility.ComplaintUseCase
}

// NewComplaintHandler builds the handler.
func NewComplaintHandler(uc *facility.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

// File records a complaint. The filer's email comes from the token.
// POST /api/complaints
func (h *ComplaintHandler) File(c *fiber.Ctx) error {
	var in dto.CreateComplaintRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.PatientEmail = GetEmail(c)
	complaint, err := h.uc.File(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// Resolve updates a complaint's status and response.
// PUT /api/complaints/:id
func (h *ComplaintHandler) Resolve(c *fiber.Ctx) error {
	var in dto.UpdateComplaintRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Resolve(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// List returns all complaints.
// GET /api/complaints
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Mine returns the authenticated patient's complaints.
// GET /api/complaints/mine
func (h *ComplaintHandler) Mine(c *fiber.Ctx) error {
	list, err := h.uc.ListMine(c.Context(), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// SurgeryHandler serves surgery scheduling routes.
type SurgeryHandler struct {
	uc *facility.SurgeryUseCase
}

// NewSurgeryHandler builds the handler.
func NewSurgeryHandler(uc *facility.SurgeryUseCase) *SurgeryHandler {
	return &SurgeryHandler{uc: uc}
}

// Schedule books an operation.
// POST /api/surgeries
func (h *SurgeryHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleSurgeryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	surgery, err := h.uc.Schedule(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(surgery)
}

// List returns all surgeries.
// GET /api/surgeries
func (h *SurgeryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ForDoctor returns one doctor's operations.
// GET /api/surgeries/doctor/:name
func (h *SurgeryHandler) ForDoctor(c *fiber.Ctx) error {
	list, err := h.uc.ListForDoctor(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RoomHandler serves room management routes.
type RoomHandler struct {
	uc *facility.RoomUseCase
}

// NewRoomHandler builds the handler.
func NewRoomHandler(uc *facility.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Add registers a room.
// POST /api/rooms
func (h *RoomHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	room, err := h.uc.Add(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// List returns all rooms.
// GET /api/rooms
func (h *RoomHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus changes a room's status and notes.
// PUT /api/rooms/:id
func (h *RoomHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": in.Status})
}
