package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafline/internal/domain"
	"leafline/internal/services"
)

func TestCheckAvailability(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{
		{Product: domain.Product{ID: "sku-full"}, Stock: 20, LowStockThreshold: 5},
		{Product: domain.Product{ID: "sku-low"}, Stock: 4, LowStockThreshold: 5},
		{Product: domain.Product{ID: "sku-out"}, Stock: 0, LowStockThreshold: 5},
	}))
	svc := services.NewInventoryService(st)

	cases := []struct {
		id     string
		status string
		qty    int
	}{
		{"sku-full", "IN_STOCK", 20},
		{"sku-low", "LOW_STOCK", 4},
		{"sku-out", "OUT_OF_STOCK", 0},
		{"sku-missing", "OUT_OF_STOCK", 0},
	}
	for _, c := range cases {
		a, err := svc.CheckAvailability(c.id)
		require.NoError(t, err, c.id)
		assert.Equal(t, c.status, a.Status, c.id)
		assert.Equal(t, c.qty, a.Qty, c.id)
	}
}

func TestRestock(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{
		{Product: domain.Product{ID: "sku-1"}, Stock: 2, LastRestock: "2024-01-01T00:00:00Z"},
	}))
	svc := services.NewInventoryService(st)

	require.NoError(t, svc.Restock("sku-1", 30))
	rec, err := svc.Get("sku-1")
	require.NoError(t, err)
	assert.Equal(t, 30, rec.Stock)
	assert.NotEqual(t, "2024-01-01T00:00:00Z", rec.LastRestock)

	assert.Error(t, svc.Restock("sku-1", -1))
	assert.ErrorIs(t, svc.Restock("ghost", 5), services.ErrItemNotFound)
}

func TestOrderFulfillMovesPendingToCompleted(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SavePendingOrders([]domain.Order{
		{ID: "ORD-1", Status: domain.StatusPendingCheckout, Total: 10},
		{ID: "ORD-2", Status: domain.StatusPendingCheckout, Total: 20},
	}))
	svc := services.NewOrderService(st)

	require.NoError(t, svc.Fulfill("ORD-1", domain.StatusInStore))

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "ORD-2", pending[0].ID)

	completed, err := svc.ListCompleted()
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "ORD-1", completed[0].ID)
	assert.Equal(t, domain.StatusInStore, completed[0].Status)

	assert.Error(t, svc.Fulfill("ORD-2", "Shipped"), "unknown status rejected")
	assert.Error(t, svc.Fulfill("ORD-1", domain.StatusInStore), "already moved")
}
