package services

import (
	"fmt"
	"sort"

	"leafline/internal/domain"
	"leafline/internal/store"
)

// OrderService is the dashboard side of order management: listing and
// status transitions. Orders are immutable once created except for the
// status move, which relocates the record from the pending to the
// completed collection.
type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

func (s *OrderService) ListPending() ([]domain.Order, error) {
	return s.sortedByCreated(s.store.LoadPendingOrders())
}

func (s *OrderService) ListCompleted() ([]domain.Order, error) {
	return s.sortedByCreated(s.store.LoadCompletedOrders())
}

func (s *OrderService) sortedByCreated(orders []domain.Order, err error) ([]domain.Order, error) {
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt > orders[j].CreatedAt })
	return orders, nil
}

// Get looks the order up in both collections.
func (s *OrderService) Get(orderID string) (domain.Order, error) {
	for _, load := range []func() ([]domain.Order, error){s.store.LoadPendingOrders, s.store.LoadCompletedOrders} {
		orders, err := load()
		if err != nil {
			return domain.Order{}, err
		}
		for _, o := range orders {
			if o.ID == orderID {
				return o, nil
			}
		}
	}
	return domain.Order{}, fmt.Errorf("order %s not found", orderID)
}

// Fulfill moves a pending order to the completed collection under the
// given fulfilled status (In-Store or Online).
func (s *OrderService) Fulfill(orderID, status string) error {
	if status != domain.StatusInStore && status != domain.StatusOnline {
		return fmt.Errorf("invalid order status: %s", status)
	}
	pending, err := s.store.LoadPendingOrders()
	if err != nil {
		return err
	}
	idx := -1
	for i, o := range pending {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("order %s not found in pending", orderID)
	}

	moved := pending[idx]
	moved.Status = status
	completed, err := s.store.LoadCompletedOrders()
	if err != nil {
		return err
	}
	if err := s.store.SaveCompletedOrders(append(completed, moved)); err != nil {
		return err
	}
	return s.store.SavePendingOrders(append(pending[:idx], pending[idx+1:]...))
}
