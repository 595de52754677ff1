package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"leafline/internal/domain"
	applog "leafline/internal/log"
	"leafline/internal/services"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Auth     *services.AuthService
	// DismissAfterMs tells the POS UI when to auto-hide the confirmation.
	DismissAfterMs int64
}

type checkoutRequest struct {
	Customer domain.CustomerInfo `json:"customer"`
}

// Place runs the reconciliation flow for the session cart. RequireUser has
// already attached the cashier identity.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sign in required"})
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	// Identity-derived defaults when the form left names blank.
	if req.Customer.FirstName == "" {
		req.Customer.FirstName = u.FirstName
	}
	if req.Customer.LastName == "" {
		req.Customer.LastName = u.LastName
	}

	order, err := h.Checkout.Finalize(sid, req.Customer, u.ID)
	if err != nil {
		return h.fail(c, err)
	}

	applog.Audit(c, "checkout.place", map[string]any{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    order.ItemCount,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":          order,
		"dismissAfterMs": h.DismissAfterMs,
	})
}

// fail maps checkout conditions onto the API surface. Everything here is
// recoverable by the cashier.
func (h *CheckoutHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCartEmpty):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	case errors.Is(err, services.ErrInvalidCustomer):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "please fill in all customer fields", "detail": err.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		applog.Security(c, "checkout.item_missing", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "an item in the cart is no longer available", "detail": err.Error()})
	case errors.Is(err, services.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "insufficient stock", "detail": err.Error()})
	case errors.Is(err, services.ErrSubmission):
		applog.Error(c, "checkout.submit.fail", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "could not submit order, please retry"})
	default:
		applog.Error(c, "checkout.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "checkout failed"})
	}
}
