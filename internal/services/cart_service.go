package services

import (
	"math"
	"sync"

	"leafline/internal/domain"
)

// CartService keeps the in-session product -> line mapping for each POS
// session, enforcing the stock ceiling known at the time of each mutation.
// Lines preserve insertion order because checkout walks them in cart order.
// It has no side effects beyond the in-memory map; persistence and UI
// notifications belong to the caller.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]domain.CartLine)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *CartService) indexOf(lines []domain.CartLine, productID string) int {
	for i := range lines {
		if lines[i].ID == productID {
			return i
		}
	}
	return -1
}

// AddItem inserts the product with quantity 1, or increments an existing
// line by 1 when that stays within availableStock. On ErrOutOfStock the
// cart is left unchanged.
func (s *CartService) AddItem(sessionID string, p domain.Product, availableStock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	i := s.indexOf(lines, p.ID)
	if i < 0 {
		if availableStock < 1 {
			return ErrOutOfStock
		}
		s.carts[sessionID] = append(lines, domain.CartLine{Product: p, Quantity: 1})
		return nil
	}
	if lines[i].Quantity >= availableStock {
		return ErrOutOfStock
	}
	lines[i].Quantity++
	return nil
}

// UpdateQuantity applies a delta, clamping the result to [0, availableStock].
// A clamp to the stock ceiling still applies and reports ErrStockLimit; a
// result of zero removes the line. Returns the applied quantity.
func (s *CartService) UpdateQuantity(sessionID, productID string, delta, availableStock int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	i := s.indexOf(lines, productID)
	if i < 0 {
		return 0, ErrItemNotFound
	}

	next := lines[i].Quantity + delta
	if next < 0 {
		next = 0
	}
	var err error
	if next > availableStock {
		next = availableStock
		err = ErrStockLimit
	}
	if next == 0 {
		s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
		return 0, err
	}
	lines[i].Quantity = next
	return next, err
}

// RemoveItem unconditionally drops the line. Reports whether it existed so
// the caller can surface a confirmation.
func (s *CartService) RemoveItem(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	i := s.indexOf(lines, productID)
	if i < 0 {
		return false
	}
	s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
	return true
}

// Lines returns a copy of the session's cart in insertion order.
func (s *CartService) Lines(sessionID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

// TotalPrice recomputes the cart total on every read.
func (s *CartService) TotalPrice(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, l := range s.carts[sessionID] {
		total += l.Subtotal()
	}
	return round2(total)
}

// TotalItemCount sums line quantities.
func (s *CartService) TotalItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.carts[sessionID] {
		n += l.Quantity
	}
	return n
}

// Clear empties the session's cart.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
