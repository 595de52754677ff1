package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "leafline/internal/log"
	"leafline/internal/services"
	"leafline/internal/validate"
)

type AdminHandler struct {
	Orders    *services.OrderService
	Inv       *services.InventoryService
	Analytics *services.AnalyticsService
	Auth      *services.AuthService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	sum, err := h.Analytics.Build()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{"Summary": sum})
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	pending, err := h.Orders.ListPending()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	completed, err := h.Orders.ListCompleted()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Pending": pending, "Completed": completed})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Orders.Fulfill(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders")
}

// GET /admin/inventory
func (h *AdminHandler) InventoryPage(c *fiber.Ctx) error {
	records, err := h.Inv.List()
	if err != nil {
		applog.Error(c, "admin.inventory.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}
	return render(c, "admin_inventory", fiber.Map{"Records": records})
}

// POST /admin/inventory
func (h *AdminHandler) UpdateInventory(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.FormValue("product_id"))
	qty, err := strconv.Atoi(c.FormValue("qty"))
	if !okID || err != nil || qty < 0 {
		return c.Status(400).SendString("invalid input")
	}
	if err := h.Inv.Restock(pid, qty); err != nil {
		applog.Error(c, "admin.inventory.save.fail", err, map[string]any{"product": pid, "qty": qty})
		return c.Status(400).SendString("could not save inventory")
	}
	applog.Audit(c, "admin.inventory.save", map[string]any{"product": pid, "qty": qty})
	return c.Redirect("/admin/inventory")
}

// GET /admin/customers
func (h *AdminHandler) CustomersPage(c *fiber.Ctx) error {
	customers, err := h.Auth.Customers()
	if err != nil {
		applog.Error(c, "admin.customers.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load customers"})
	}
	return render(c, "admin_customers", fiber.Map{"Customers": customers})
}
