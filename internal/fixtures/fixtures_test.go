package fixtures

import (
	"math"
	"testing"

	"leafline/internal/domain"
)

func TestInventoryInvariants(t *testing.T) {
	gen := New(42)
	records := gen.Inventory(100)
	if len(records) != 100 {
		t.Fatalf("want 100 records, got %d", len(records))
	}
	valid := map[string]bool{}
	for _, c := range domain.Categories {
		valid[c] = true
	}
	seen := map[string]bool{}
	for _, r := range records {
		if r.Stock < 0 {
			t.Fatalf("negative stock on %s", r.ID)
		}
		if r.Price <= 0 || r.PurchasePrice <= 0 || r.PurchasePrice >= r.Price {
			t.Fatalf("implausible pricing on %s: sell=%.2f buy=%.2f", r.ID, r.Price, r.PurchasePrice)
		}
		if !valid[r.Category] {
			t.Fatalf("unknown category %q", r.Category)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

// Generated history must satisfy the same order-total invariant the
// checkout flow enforces.
func TestHistoricalOrderTotals(t *testing.T) {
	gen := New(7)
	inv := gen.Inventory(20)
	customers := gen.Customers(5)
	orders := gen.HistoricalOrders(25, inv, customers)
	if len(orders) != 25 {
		t.Fatalf("want 25 orders, got %d", len(orders))
	}
	for _, o := range orders {
		sum := 0.0
		count := 0
		for _, it := range o.Items {
			sum += it.Price * float64(it.Quantity)
			count += it.Quantity
		}
		want := math.Round(sum*100) / 100
		if math.Abs(o.Total-want) > 0.001 {
			t.Fatalf("order %s total %.2f != %.2f", o.ID, o.Total, want)
		}
		if o.ItemCount != count {
			t.Fatalf("order %s item count %d != %d", o.ID, o.ItemCount, count)
		}
		if o.Status != domain.StatusInStore && o.Status != domain.StatusOnline {
			t.Fatalf("order %s has unfulfilled status %q", o.ID, o.Status)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := New(99).Inventory(10)
	b := New(99).Inventory(10)
	for i := range a {
		// LastRestock is anchored to wall-clock time at construction.
		a[i].LastRestock, b[i].LastRestock = "", ""
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCustomersAndReel(t *testing.T) {
	gen := New(1)
	customers := gen.Customers(10)
	if len(customers) != 10 {
		t.Fatalf("want 10 customers")
	}
	for _, c := range customers {
		if c.Role != "USER" || c.Email == "" || c.FirstName == "" {
			t.Fatalf("bad customer: %+v", c)
		}
	}
	if len(gen.Reel()) == 0 {
		t.Fatal("reel must not be empty")
	}
}
