package store

import (
	"encoding/json"
	"log"

	"leafline/internal/domain"
)

// Collection keys. Each holds one JSON array.
const (
	KeyInventory       = "inventory"
	KeyPendingOrders   = "pending_orders"
	KeyCompletedOrders = "completed_orders"
	KeyUsers           = "users"
	KeyReel            = "reel"
)

// Store exposes typed load/save accessors over the KV byte store, one per
// persisted collection. Reads of missing or malformed data yield an empty
// collection (logged, never fatal). Writes replace the whole collection.
type Store struct {
	kv *KV
}

func New(kv *KV) *Store { return &Store{kv: kv} }

func loadJSON[T any](kv *KV, key string) ([]T, error) {
	raw, err := kv.Get(key)
	if err == ErrNotFound {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		// Corrupted collection: recover by treating it as empty.
		log.Printf("[store] malformed data under %q, treating as empty: %v", key, err)
		return []T{}, nil
	}
	return out, nil
}

func saveJSON[T any](kv *KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return kv.Put(key, raw)
}

func (s *Store) LoadInventory() ([]domain.InventoryRecord, error) {
	return loadJSON[domain.InventoryRecord](s.kv, KeyInventory)
}

func (s *Store) SaveInventory(records []domain.InventoryRecord) error {
	return saveJSON(s.kv, KeyInventory, records)
}

func (s *Store) LoadPendingOrders() ([]domain.Order, error) {
	return loadJSON[domain.Order](s.kv, KeyPendingOrders)
}

func (s *Store) SavePendingOrders(orders []domain.Order) error {
	return saveJSON(s.kv, KeyPendingOrders, orders)
}

// AppendPendingOrder is a whole-collection read-modify-write; callers that
// need isolation must serialize around it.
func (s *Store) AppendPendingOrder(o domain.Order) error {
	orders, err := s.LoadPendingOrders()
	if err != nil {
		return err
	}
	return s.SavePendingOrders(append(orders, o))
}

func (s *Store) LoadCompletedOrders() ([]domain.Order, error) {
	return loadJSON[domain.Order](s.kv, KeyCompletedOrders)
}

func (s *Store) SaveCompletedOrders(orders []domain.Order) error {
	return saveJSON(s.kv, KeyCompletedOrders, orders)
}

func (s *Store) LoadUsers() ([]domain.User, error) {
	return loadJSON[domain.User](s.kv, KeyUsers)
}

func (s *Store) SaveUsers(users []domain.User) error {
	return saveJSON(s.kv, KeyUsers, users)
}

func (s *Store) LoadReel() ([]domain.ReelSlide, error) {
	return loadJSON[domain.ReelSlide](s.kv, KeyReel)
}

func (s *Store) SaveReel(slides []domain.ReelSlide) error {
	return saveJSON(s.kv, KeyReel, slides)
}
