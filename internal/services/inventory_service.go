package services

import (
	"fmt"
	"time"

	"leafline/internal/domain"
)

// InventoryService serves stock reads and the admin restock path. It never
// decrements stock; that is the checkout flow's exclusive decision.
type InventoryService struct {
	store InventoryStore
}

func NewInventoryService(store InventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) List() ([]domain.InventoryRecord, error) {
	return s.store.LoadInventory()
}

// Get returns the record for one product, or ErrItemNotFound.
func (s *InventoryService) Get(productID string) (domain.InventoryRecord, error) {
	records, err := s.store.LoadInventory()
	if err != nil {
		return domain.InventoryRecord{}, err
	}
	for _, r := range records {
		if r.ID == productID {
			return r, nil
		}
	}
	return domain.InventoryRecord{}, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
}

// CheckAvailability maps stock against the record's low-stock threshold.
func (s *InventoryService) CheckAvailability(productID string) (domain.Availability, error) {
	rec, err := s.Get(productID)
	if err != nil {
		return domain.Availability{Status: "OUT_OF_STOCK"}, nil
	}
	status := "IN_STOCK"
	switch {
	case rec.Stock == 0:
		status = "OUT_OF_STOCK"
	case rec.Stock <= rec.LowStockThreshold:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: rec.Stock}, nil
}

// Restock sets the stock count for one product and stamps the restock
// time. Whole-collection read-modify-write, same seam as checkout.
func (s *InventoryService) Restock(productID string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("restock qty must be non-negative")
	}
	records, err := s.store.LoadInventory()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == productID {
			records[i].Stock = qty
			records[i].LastRestock = time.Now().UTC().Format(time.RFC3339)
			return s.store.SaveInventory(records)
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, productID)
}
