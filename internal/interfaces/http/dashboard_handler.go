package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/analytics"
)

// DashboardHandler serves the dashboard and report routes.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin returns the headline counters.
// GET /api/dashboard/admin
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	dash, err := h.uc.AdminDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dash)
}

// Billing returns the revenue view.
// GET /api/dashboard/billing
func (h *DashboardHandler) Billing(c *fiber.Ctx) error {
	dash, err := h.uc.BillingDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dash)
}

// DailyReport summarizes the last 24 hours of billing.
// GET /api/reports/daily
func (h *DashboardHandler) DailyReport(c *fiber.Ctx) error {
	report, err := h.uc.DailyReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// MyReport returns the authenticated patient's billing summary.
// GET /api/reports/mine
func (h *DashboardHandler) MyReport(c *fiber.Ctx) error {
	report, err := h.uc.PatientReport(c.Context(), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
