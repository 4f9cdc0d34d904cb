package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/inventory"
)

// InventoryHandler serves stock and purchase routes.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddItem registers a supply.
// POST /api/inventory
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.AddItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems returns the full stock list.
// GET /api/inventory
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	list, err := h.uc.ListItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// LowStock returns items at or below their threshold.
// GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RecordPurchase sells inventory to a patient.
// POST /api/purchases
func (h *InventoryHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	purchase, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// ListPurchases returns recent purchases.
// GET /api/purchases?limit=100
func (h *InventoryHandler) ListPurchases(c *fiber.Ctx) error {
	list, err := h.uc.ListPurchases(c.Context(), c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
