package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"leafline/internal/ai"
	"leafline/internal/config"
	"leafline/internal/fixtures"
	"leafline/internal/http/handlers"
	applog "leafline/internal/log"
	"leafline/internal/services"
	"leafline/internal/store"
	"leafline/pkg/events"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	kv, err := store.OpenKV(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	st := store.New(kv)

	seed := cfg.FixtureSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := st.SeedIfEmpty(fixtures.New(seed)); err != nil {
		log.Fatal(err)
	}

	// Optional broker for order events.
	var pub *events.Publisher
	if cfg.AMQPURL != "" {
		pub, err = events.NewPublisher(events.Config{URL: cfg.AMQPURL})
		if err != nil {
			log.Printf("[warn] broker unavailable, order events disabled: %v", err)
			pub = nil
		} else {
			defer pub.Close()
		}
	}

	authSvc := services.NewAuthService(st)
	authH := &handlers.AuthHandler{Auth: authSvc}
	advisor := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout)

	engine := html.New(cfg.TemplateDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	app.Static("/static", cfg.StaticDir)

	deps := handlers.NewDeps(st, authSvc, advisor, pub)
	deps.CheckoutHandler.DismissAfterMs = cfg.ConfirmDismiss.Milliseconds()

	// ---------- POS API ----------
	api := app.Group("/api/v1")
	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/availability", deps.CatalogHandler.Availability)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Post("/cart/items/qty", deps.CartHandler.UpdateQty)
	api.Post("/cart/items/remove", deps.CartHandler.Remove)
	api.Post("/checkout", handlers.RequireUser(authSvc), deps.CheckoutHandler.Place)
	api.Post("/upsell", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), deps.UpsellHandler.Suggest)
	api.Get("/reel", deps.ReelHandler.List)
	api.Get("/me", authH.Me)

	// ---------- Auth & admin (HTML forms, CSRF-protected) ----------
	forms := csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	})
	tokenToLocals := func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	}

	app.Get("/login", forms, tokenToLocals, authH.LoginForm)
	app.Post("/login", forms, limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", forms, authH.Logout)

	admin := app.Group("/admin", forms, tokenToLocals, handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/orders", deps.AdminHandler.OrdersPage)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/inventory", deps.AdminHandler.InventoryPage)
	admin.Post("/inventory", deps.AdminHandler.UpdateInventory)
	admin.Get("/customers", deps.AdminHandler.CustomersPage)
	admin.Get("/reel", deps.ReelHandler.AdminPage)
	admin.Post("/reel", deps.ReelHandler.Replace)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	// ---------- Serve, shut down on signal ----------
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	if err := kv.Close(); err != nil {
		log.Printf("error closing store: %v", err)
	}
	log.Println("server stopped")
}
