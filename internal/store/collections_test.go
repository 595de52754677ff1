package store

import (
	"testing"

	"leafline/internal/domain"
)

func memStore(t *testing.T) *Store {
	t.Helper()
	return New(memKV(t))
}

func TestLoadMissingCollectionIsEmpty(t *testing.T) {
	s := memStore(t)

	inv, err := s.LoadInventory()
	if err != nil {
		t.Fatal(err)
	}
	if len(inv) != 0 {
		t.Fatalf("want empty inventory, got %d records", len(inv))
	}
}

// A corrupted (non-JSON) value under any collection key must load as an
// empty collection without raising a fault.
func TestMalformedCollectionRecoversEmpty(t *testing.T) {
	kv := memKV(t)
	s := New(kv)

	for _, key := range []string{KeyInventory, KeyPendingOrders, KeyCompletedOrders, KeyUsers, KeyReel} {
		if err := kv.Put(key, []byte("{{{not json")); err != nil {
			t.Fatal(err)
		}
	}

	if inv, err := s.LoadInventory(); err != nil || len(inv) != 0 {
		t.Fatalf("inventory: want empty, got %d err=%v", len(inv), err)
	}
	if orders, err := s.LoadPendingOrders(); err != nil || len(orders) != 0 {
		t.Fatalf("pending: want empty, got %d err=%v", len(orders), err)
	}
	if orders, err := s.LoadCompletedOrders(); err != nil || len(orders) != 0 {
		t.Fatalf("completed: want empty, got %d err=%v", len(orders), err)
	}
	if users, err := s.LoadUsers(); err != nil || len(users) != 0 {
		t.Fatalf("users: want empty, got %d err=%v", len(users), err)
	}
	if reel, err := s.LoadReel(); err != nil || len(reel) != 0 {
		t.Fatalf("reel: want empty, got %d err=%v", len(reel), err)
	}
}

// Recovery is idempotent: a corrupt collection can be written over and
// reads normally afterwards.
func TestMalformedCollectionWritableAfterRecovery(t *testing.T) {
	kv := memKV(t)
	s := New(kv)

	if err := kv.Put(KeyInventory, []byte("garbage")); err != nil {
		t.Fatal(err)
	}
	rec := domain.InventoryRecord{Product: domain.Product{ID: "sku-1", Name: "Blue Dream 3g", Price: 30, Category: domain.CategoryFlower}, Stock: 4}
	if err := s.SaveInventory([]domain.InventoryRecord{rec}); err != nil {
		t.Fatal(err)
	}
	inv, err := s.LoadInventory()
	if err != nil {
		t.Fatal(err)
	}
	if len(inv) != 1 || inv[0].ID != "sku-1" {
		t.Fatalf("unexpected inventory after rewrite: %+v", inv)
	}
}

func TestAppendPendingOrder(t *testing.T) {
	s := memStore(t)

	if err := s.AppendPendingOrder(domain.Order{ID: "ORD-1", Status: domain.StatusPendingCheckout}); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendPendingOrder(domain.Order{ID: "ORD-2", Status: domain.StatusPendingCheckout}); err != nil {
		t.Fatal(err)
	}
	orders, err := s.LoadPendingOrders()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 || orders[0].ID != "ORD-1" || orders[1].ID != "ORD-2" {
		t.Fatalf("unexpected pending orders: %+v", orders)
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	s := memStore(t)

	in := []domain.InventoryRecord{
		{Product: domain.Product{ID: "sku-1", Name: "OG Kush 3g", Price: 42.5, Category: domain.CategoryFlower, Tag: "Indica", Rating: 4.6}, Stock: 10, LowStockThreshold: 5, Supplier: "Green Valley Farms"},
		{Product: domain.Product{ID: "sku-2", Name: "Berry Gummies", Price: 18, Category: domain.CategoryEdibles}, Stock: 0, LowStockThreshold: 8},
	}
	if err := s.SaveInventory(in); err != nil {
		t.Fatal(err)
	}
	out, err := s.LoadInventory()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Supplier != "Green Valley Farms" || out[1].Stock != 0 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
