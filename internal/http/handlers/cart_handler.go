package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "leafline/internal/log"
	"leafline/internal/services"
	"leafline/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
	Inv  *services.InventoryService
}

type cartMutation struct {
	ProductID string `json:"productId"`
	Delta     int    `json:"delta"`
}

func (h *CartHandler) view(c *fiber.Ctx, sid string) error {
	return c.JSON(fiber.Map{
		"items":     h.Cart.Lines(sid),
		"total":     h.Cart.TotalPrice(sid),
		"itemCount": h.Cart.TotalItemCount(sid),
	})
}

// View returns the session cart with totals recomputed on read.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return h.view(c, ensureSID(c))
}

// Add puts one unit of the product into the cart, bounded by live stock.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartMutation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	productID, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}

	rec, err := h.Inv.Get(productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	if err := h.Cart.AddItem(sid, rec.Product, rec.Stock); err != nil {
		if errors.Is(err, services.ErrOutOfStock) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "out of stock", "product": rec.Name})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return h.view(c, sid)
}

// UpdateQty applies a quantity delta; clamps to stock and reports the clamp.
func (h *CartHandler) UpdateQty(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartMutation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	productID, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}

	rec, err := h.Inv.Get(productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	qty, err := h.Cart.UpdateQuantity(sid, productID, req.Delta, rec.Stock)
	switch {
	case errors.Is(err, services.ErrStockLimit):
		// Clamp applied; report it so the UI can toast.
		return c.JSON(fiber.Map{"quantity": qty, "clamped": true})
	case errors.Is(err, services.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not in cart"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"quantity": qty, "clamped": false})
}

// Remove drops the line unconditionally.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartMutation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	removed := h.Cart.RemoveItem(sid, req.ProductID)
	if removed {
		applog.Info(c, "cart.remove", map[string]any{"product": req.ProductID})
	}
	return c.JSON(fiber.Map{"removed": removed})
}
