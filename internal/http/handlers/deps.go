package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"leafline/internal/ai"
	"leafline/internal/services"
	"leafline/internal/store"
	"leafline/pkg/events"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	UpsellHandler   *UpsellHandler
	ReelHandler     *ReelHandler
	AdminHandler    *AdminHandler
}

func NewDeps(st *store.Store, auth *services.AuthService, advisor *ai.Client, pub *events.Publisher) *Deps {
	cartSvc := services.NewCartService()
	catalogSvc := services.NewCatalogService(st)
	invSvc := services.NewInventoryService(st)
	checkoutSvc := services.NewCheckoutService(st, st, cartSvc, pub)
	orderSvc := services.NewOrderService(st)
	analyticsSvc := services.NewAnalyticsService(st)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc, Inv: invSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, Inv: invSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc, Auth: auth},
		UpsellHandler:   &UpsellHandler{Cart: cartSvc, Advisor: advisor},
		ReelHandler:     &ReelHandler{Store: st},
		AdminHandler:    &AdminHandler{Orders: orderSvc, Inv: invSvc, Analytics: analyticsSvc, Auth: auth},
	}
}

// ensureSID guarantees a session cookie for cart state.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}
