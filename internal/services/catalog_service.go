package services

import (
	"sort"
	"strings"

	"leafline/internal/domain"
)

// CatalogService projects the inventory snapshot into the POS product
// grid. Products with zero stock stay visible (the cart refuses them).
type CatalogService struct {
	store InventoryStore
}

func NewCatalogService(store InventoryStore) *CatalogService {
	return &CatalogService{store: store}
}

// List returns catalog products, optionally filtered by category and a
// case-insensitive name query, sorted by name.
func (s *CatalogService) List(category, q string) ([]domain.InventoryRecord, error) {
	records, err := s.store.LoadInventory()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := records[:0:0]
	for _, r := range records {
		if category != "" && r.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
