package services

import (
	"leafline/internal/store"
)

// Summary is the admin dashboard's sales and stock overview.
type Summary struct {
	Revenue         float64        `json:"revenue"`
	OrderCount      int            `json:"orderCount"`
	PendingCount    int            `json:"pendingCount"`
	UnitsByCategory map[string]int `json:"unitsByCategory"`
	LowStockCount   int            `json:"lowStockCount"`
	OutOfStockCount int            `json:"outOfStockCount"`
}

type AnalyticsService struct {
	store *store.Store
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Build aggregates completed plus pending orders and the current snapshot.
// Recomputed on every read; there is no cached state to go stale.
func (s *AnalyticsService) Build() (Summary, error) {
	sum := Summary{UnitsByCategory: make(map[string]int)}

	completed, err := s.store.LoadCompletedOrders()
	if err != nil {
		return Summary{}, err
	}
	pending, err := s.store.LoadPendingOrders()
	if err != nil {
		return Summary{}, err
	}
	sum.PendingCount = len(pending)

	for _, o := range append(completed, pending...) {
		sum.Revenue += o.Total
		sum.OrderCount++
		for _, it := range o.Items {
			sum.UnitsByCategory[it.Category] += it.Quantity
		}
	}
	sum.Revenue = round2(sum.Revenue)

	inv, err := s.store.LoadInventory()
	if err != nil {
		return Summary{}, err
	}
	for _, r := range inv {
		switch {
		case r.Stock == 0:
			sum.OutOfStockCount++
		case r.Stock <= r.LowStockThreshold:
			sum.LowStockCount++
		}
	}
	return sum, nil
}
