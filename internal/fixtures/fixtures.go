// Package fixtures produces randomized demo catalogs, inventory, customer
// profiles, and historical orders. Generators are pure: they return data and
// never touch the store.
package fixtures

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"leafline/internal/domain"
)

type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New returns a generator seeded for reproducible output; pass
// time.Now().UnixNano() for fresh demo data.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: time.Now().UTC()}
}

var productNames = map[string][]string{
	domain.CategoryFlower:       {"Blue Dream", "OG Kush", "Sour Diesel", "Granddaddy Purple", "Pineapple Express", "Northern Lights"},
	domain.CategoryConcentrates: {"Live Resin", "Shatter Slab", "Budder Batch", "Rosin Press", "Diamond Sauce"},
	domain.CategoryVapes:        {"Citrus Haze Cart", "Indigo Cloud Pen", "Mint Glacier Pod", "Sunset Sherbet Cart"},
	domain.CategoryEdibles:      {"Berry Gummies", "Cocoa Bites", "Honey Lozenges", "Citrus Chews", "Caramel Squares"},
}

var tags = []string{"Sativa", "Indica", "Hybrid", "CBD"}

var suppliers = []string{"Green Valley Farms", "Pacific Leaf Co", "Highline Gardens", "Emerald Ridge", "Canopy Collective"}

var firstNames = []string{"Avery", "Jordan", "Riley", "Casey", "Morgan", "Quinn", "Skyler", "Dakota", "Reese", "Emerson"}

var lastNames = []string{"Nguyen", "Garcia", "Smith", "Okafor", "Kim", "Patel", "Silva", "Brown", "Ivanov", "Fischer"}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Inventory generates n inventory records across all categories with
// plausible prices, stock counts, and restock history. Stock is always
// non-negative and a small share of records starts at zero.
func (g *Generator) Inventory(n int) []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, 0, n)
	for i := 0; i < n; i++ {
		cat := domain.Categories[g.rng.Intn(len(domain.Categories))]
		names := productNames[cat]
		name := names[g.rng.Intn(len(names))]
		price := round2(8 + g.rng.Float64()*72)
		stock := g.rng.Intn(60)
		if g.rng.Intn(10) == 0 {
			stock = 0
		}
		id := fmt.Sprintf("sku-%04d", i+1)
		records = append(records, domain.InventoryRecord{
			Product: domain.Product{
				ID:       id,
				Name:     fmt.Sprintf("%s %dg", name, 1+g.rng.Intn(7)),
				Price:    price,
				Category: cat,
				Tag:      tags[g.rng.Intn(len(tags))],
				Rating:   round2(3 + g.rng.Float64()*2),
				Image:    fmt.Sprintf("products/%s.jpg", id),
			},
			Stock:             stock,
			LowStockThreshold: 5 + g.rng.Intn(10),
			Supplier:          suppliers[g.rng.Intn(len(suppliers))],
			PurchasePrice:     round2(price * (0.4 + g.rng.Float64()*0.3)),
			LastRestock:       g.now.AddDate(0, 0, -g.rng.Intn(30)).Format(time.RFC3339),
		})
	}
	return records
}

// Customers generates n registered user profiles with USER role and a
// random rewards balance. Password hashes are left empty; seeding assigns
// a demo credential where one is needed.
func (g *Generator) Customers(n int) []domain.User {
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		users = append(users, domain.User{
			ID:            "cust-" + uuid.NewString()[:8],
			Email:         fmt.Sprintf("%s.%s%d@leafline.test", first, last, i),
			FirstName:     first,
			LastName:      last,
			Role:          "USER",
			RewardsPoints: g.rng.Intn(2000),
		})
	}
	return users
}

// HistoricalOrders generates n fulfilled orders drawn from the given
// inventory. Totals and item counts are derived from the lines so the
// order-total invariant holds for generated data too.
func (g *Generator) HistoricalOrders(n int, inv []domain.InventoryRecord, customers []domain.User) []domain.Order {
	if len(inv) == 0 {
		return nil
	}
	orders := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		lineCount := 1 + g.rng.Intn(4)
		items := make([]domain.CartLine, 0, lineCount)
		total := 0.0
		count := 0
		for j := 0; j < lineCount; j++ {
			rec := inv[g.rng.Intn(len(inv))]
			qty := 1 + g.rng.Intn(3)
			items = append(items, domain.CartLine{Product: rec.Product, Quantity: qty})
			total += rec.Price * float64(qty)
			count += qty
		}
		status := domain.StatusInStore
		if g.rng.Intn(2) == 0 {
			status = domain.StatusOnline
		}
		name := "Walk-in Guest"
		custID := ""
		if len(customers) > 0 && g.rng.Intn(4) != 0 {
			c := customers[g.rng.Intn(len(customers))]
			name = c.FirstName + " " + c.LastName
			custID = c.ID
		}
		placed := g.now.AddDate(0, 0, -g.rng.Intn(45))
		orders = append(orders, domain.Order{
			ID:           fmt.Sprintf("ORD-%s-%s", placed.Format("20060102"), uuid.NewString()[:6]),
			CustomerName: name,
			CustomerID:   custID,
			CreatedAt:    placed.Format(time.RFC3339),
			Status:       status,
			Total:        round2(total),
			ItemCount:    count,
			Items:        items,
		})
	}
	return orders
}

// Reel generates the default promotional story-reel configuration.
func (g *Generator) Reel() []domain.ReelSlide {
	badges := []string{"NEW", "SALE", "STAFF PICK", ""}
	titles := []string{"Fresh Drops", "Weekend Deals", "Budtender Favorites", "Loyalty Rewards"}
	slides := make([]domain.ReelSlide, 0, len(titles))
	for i, t := range titles {
		slides = append(slides, domain.ReelSlide{
			ID:              fmt.Sprintf("reel-%d", i+1),
			Title:           t,
			Image:           fmt.Sprintf("reel/slide-%d.jpg", i+1),
			BadgeType:       badges[g.rng.Intn(len(badges))],
			PulsatingBorder: g.rng.Intn(3) == 0,
		})
	}
	return slides
}
