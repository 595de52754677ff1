package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"leafline/internal/services"
	"leafline/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Inv     *services.InventoryService
}

// List serves the POS product grid from the inventory snapshot.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	q := c.Query("q")
	records, err := h.Catalog.List(category, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load catalog"})
	}
	return c.JSON(fiber.Map{"products": records})
}

// Availability reports IN_STOCK / LOW_STOCK / OUT_OF_STOCK for one product.
func (h *CatalogHandler) Availability(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing or invalid productId"})
	}
	avail, err := h.Inv.CheckAvailability(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(avail)
}
