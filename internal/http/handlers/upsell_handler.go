package handlers

import (
	"github.com/gofiber/fiber/v2"

	"leafline/internal/ai"
	applog "leafline/internal/log"
	"leafline/internal/services"
)

// UpsellHandler surfaces advisory suggestions for the current cart. Runs
// alongside checkout and never gates it; failures come back as a
// non-blocking error the UI shows as a toast.
type UpsellHandler struct {
	Cart    *services.CartService
	Advisor *ai.Client
}

func (h *UpsellHandler) Suggest(c *fiber.Ctx) error {
	sid := ensureSID(c)
	lines := h.Cart.Lines(sid)
	if len(lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	}

	items := make([]ai.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, ai.CartItem{Name: l.Name, Category: l.Category})
	}

	advice, err := h.Advisor.Suggest(c.UserContext(), items)
	if err != nil {
		applog.Error(c, "upsell.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "suggestions unavailable"})
	}
	return c.JSON(advice)
}
