package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "leafline/internal/log"
	"leafline/internal/services"
	"leafline/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok || !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	if u.Role == "ADMIN" {
		return c.Redirect("/admin")
	}
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

// Me reports the signed-in identity for the POS header.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return c.JSON(fiber.Map{"user": nil})
	}
	u, err := h.Auth.CurrentUser(sid)
	if err != nil || u == nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": fiber.Map{
		"id":            u.ID,
		"firstName":     u.FirstName,
		"lastName":      u.LastName,
		"rewardsPoints": u.RewardsPoints,
	}})
}
