package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"leafline/internal/domain"
	applog "leafline/internal/log"
	"leafline/internal/store"
)

// ReelHandler serves and replaces the promotional story-reel config.
type ReelHandler struct {
	Store *store.Store
}

func (h *ReelHandler) List(c *fiber.Ctx) error {
	slides, err := h.Store.LoadReel()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load reel"})
	}
	return c.JSON(fiber.Map{"slides": slides})
}

// AdminPage renders the reel editor with the current config as JSON.
func (h *ReelHandler) AdminPage(c *fiber.Ctx) error {
	slides, err := h.Store.LoadReel()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load reel"})
	}
	raw, _ := json.MarshalIndent(slides, "", "  ")
	return render(c, "admin_reel", fiber.Map{"Slides": slides, "Config": string(raw)})
}

// Replace overwrites the whole reel config from the submitted JSON.
func (h *ReelHandler) Replace(c *fiber.Ctx) error {
	raw := c.FormValue("config")
	var slides []domain.ReelSlide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("config must be a JSON array of slides")
	}
	if err := h.Store.SaveReel(slides); err != nil {
		applog.Error(c, "admin.reel.save.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not save reel")
	}
	applog.Audit(c, "admin.reel.save", map[string]any{"slides": len(slides)})
	return c.Redirect("/admin/reel")
}
