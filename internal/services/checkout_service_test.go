package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafline/internal/domain"
	"leafline/internal/services"
	"leafline/internal/store"
)

func memStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := store.OpenKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return store.New(kv)
}

func record(id string, price float64, stock int) domain.InventoryRecord {
	return domain.InventoryRecord{
		Product: domain.Product{ID: id, Name: "Product " + id, Price: price, Category: domain.CategoryFlower},
		Stock:   stock,
	}
}

func validCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{FirstName: "Ada", LastName: "Moss", DateOfBirth: "1990-04-12", Phone: "555-201-9988"}
}

func fillCart(t *testing.T, cart *services.CartService, sid, productID string, price float64, qty, stock int) {
	t.Helper()
	for i := 0; i < qty; i++ {
		require.NoError(t, cart.AddItem(sid, domain.Product{ID: productID, Name: "Product " + productID, Price: price, Category: domain.CategoryFlower}, stock))
	}
}

func TestFinalizeSuccess(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{record("A", 12.50, 10)}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 12.50, 3, 10)

	svc := services.NewCheckoutService(st, st, cart, nil)
	order, err := svc.Finalize(sid, validCustomer(), "u-june")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPendingCheckout, order.Status)
	assert.Equal(t, 3, order.ItemCount)
	assert.InDelta(t, 37.50, order.Total, 0.001)
	assert.Equal(t, "Ada Moss", order.CustomerName)
	assert.Equal(t, "u-june", order.CustomerID)
	assert.True(t, order.POSOrigin)
	assert.NotEmpty(t, order.ID)

	inv, err := st.LoadInventory()
	require.NoError(t, err)
	assert.Equal(t, 7, inv[0].Stock)

	pending, err := st.LoadPendingOrders()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, order.ID, pending[0].ID)

	assert.Empty(t, cart.Lines(sid), "cart must be cleared on success")
}

func TestFinalizeOrderTotalInvariant(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{
		record("A", 19.99, 10),
		record("B", 7.33, 10),
	}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 19.99, 2, 10)
	fillCart(t, cart, sid, "B", 7.33, 3, 10)

	svc := services.NewCheckoutService(st, st, cart, nil)
	order, err := svc.Finalize(sid, validCustomer(), "u-june")
	require.NoError(t, err)

	// 2*19.99 + 3*7.33 = 61.97, rounded to 2 places
	assert.InDelta(t, 61.97, order.Total, 0.001)
	assert.Equal(t, 5, order.ItemCount)
}

// Insufficient stock on any line must fail the whole checkout with zero
// inventory mutation, even when earlier lines had enough stock.
func TestFinalizeInsufficientStockIsAllOrNothing(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{
		record("A", 10, 10),
		record("B", 10, 5),
	}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 10, 3, 10)
	// Cart was filled while B showed more stock than it has at finalize:
	// shrink B behind the cart's back to force the race.
	fillCart(t, cart, sid, "B", 10, 3, 10)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{
		record("A", 10, 10),
		record("B", 10, 2),
	}))

	svc := services.NewCheckoutService(st, st, cart, nil)
	_, err := svc.Finalize(sid, validCustomer(), "u-june")
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	inv, err := st.LoadInventory()
	require.NoError(t, err)
	assert.Equal(t, 10, inv[0].Stock, "A must not be partially decremented")
	assert.Equal(t, 2, inv[1].Stock)

	pending, err := st.LoadPendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.NotEmpty(t, cart.Lines(sid), "cart survives a failed checkout")
}

func TestFinalizeItemMissingFromSnapshot(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{record("A", 10, 10)}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 10, 1, 10)
	fillCart(t, cart, sid, "GHOST", 5, 1, 10)

	svc := services.NewCheckoutService(st, st, cart, nil)
	_, err := svc.Finalize(sid, validCustomer(), "u-june")
	assert.ErrorIs(t, err, services.ErrItemNotFound)

	inv, _ := st.LoadInventory()
	assert.Equal(t, 10, inv[0].Stock)
}

type failingOrderStore struct{}

func (failingOrderStore) AppendPendingOrder(domain.Order) error {
	return errors.New("simulated write failure")
}

// If the order append fails after inventory was decremented and persisted,
// the compensating rollback must restore the pre-checkout snapshot and no
// order may appear.
func TestFinalizeRollsBackInventoryOnOrderFailure(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{record("A", 10, 10)}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 10, 3, 10)

	svc := services.NewCheckoutService(st, failingOrderStore{}, cart, nil)
	_, err := svc.Finalize(sid, validCustomer(), "u-june")
	assert.ErrorIs(t, err, services.ErrSubmission)

	inv, err := st.LoadInventory()
	require.NoError(t, err)
	assert.Equal(t, 10, inv[0].Stock, "inventory must be restored")

	pending, err := st.LoadPendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.NotEmpty(t, cart.Lines(sid))
}

func TestFinalizeEmptyCart(t *testing.T) {
	st := memStore(t)
	svc := services.NewCheckoutService(st, st, services.NewCartService(), nil)
	_, err := svc.Finalize("pos-1", validCustomer(), "u-june")
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func TestFinalizeRejectsIncompleteCustomer(t *testing.T) {
	st := memStore(t)
	require.NoError(t, st.SaveInventory([]domain.InventoryRecord{record("A", 10, 10)}))

	cart := services.NewCartService()
	sid := "pos-1"
	fillCart(t, cart, sid, "A", 10, 1, 10)
	svc := services.NewCheckoutService(st, st, cart, nil)

	cases := []domain.CustomerInfo{
		{LastName: "Moss", DateOfBirth: "1990-04-12", Phone: "555-201-9988"},
		{FirstName: "Ada", DateOfBirth: "1990-04-12", Phone: "555-201-9988"},
		{FirstName: "Ada", LastName: "Moss", Phone: "555-201-9988"},
		{FirstName: "Ada", LastName: "Moss", DateOfBirth: "1990-04-12"},
		{FirstName: "Ada", LastName: "Moss", DateOfBirth: "not-a-date", Phone: "555-201-9988"},
		{FirstName: "Ada", LastName: "Moss", DateOfBirth: "1990-04-12", Phone: "abc"},
	}
	for i, c := range cases {
		_, err := svc.Finalize(sid, c, "u-june")
		assert.ErrorIsf(t, err, services.ErrInvalidCustomer, "case %d", i)
	}

	// No mutation happened for any of the rejected attempts.
	inv, _ := st.LoadInventory()
	assert.Equal(t, 10, inv[0].Stock)
	assert.Len(t, cart.Lines(sid), 1)
}
