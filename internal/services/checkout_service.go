package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"leafline/internal/domain"
	"leafline/internal/validate"
	"leafline/pkg/events"
)

// InventoryStore is the persistence seam the reconciliation flow mutates.
type InventoryStore interface {
	LoadInventory() ([]domain.InventoryRecord, error)
	SaveInventory([]domain.InventoryRecord) error
}

// OrderStore receives the finalized order.
type OrderStore interface {
	AppendPendingOrder(domain.Order) error
}

// CheckoutService converts a cart into a persisted order while keeping the
// inventory snapshot consistent. All checkouts are serialized by an
// in-process mutex, so the load-decrement-save sequence below cannot
// interleave with another checkout in this process. The store itself gives
// no cross-process isolation; that gap is inherited from the whole-collection
// read-modify-write storage model and documented rather than hidden.
type CheckoutService struct {
	mu       sync.Mutex
	inv      InventoryStore
	orders   OrderStore
	cart     *CartService
	events   *events.Publisher
	validate *validator.Validate
}

func NewCheckoutService(inv InventoryStore, orders OrderStore, cart *CartService, pub *events.Publisher) *CheckoutService {
	return &CheckoutService{
		inv:      inv,
		orders:   orders,
		cart:     cart,
		events:   pub,
		validate: validator.New(),
	}
}

// Finalize runs the reconciliation flow for one session:
//
//  1. validate customer info (no mutation on failure)
//  2. load the live persisted inventory snapshot
//  3. check and decrement a transaction copy, line by line in cart order
//     (any miss aborts the whole operation with zero mutation)
//  4. persist the decremented snapshot
//  5. build and append the pending order
//  6. if step 5 fails after step 4 succeeded, best-effort rollback:
//     re-persist the pre-transaction snapshot
//
// The step-5 rollback is a compensating action, not a transaction: a crash
// between the two writes can leave inventory and orders diverged.
func (s *CheckoutService) Finalize(sessionID string, customer domain.CustomerInfo, customerID string) (domain.Order, error) {
	lines := s.cart.Lines(sessionID)
	if len(lines) == 0 {
		return domain.Order{}, ErrCartEmpty
	}
	if err := s.validateCustomer(customer); err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.inv.LoadInventory()
	if err != nil {
		return domain.Order{}, fmt.Errorf("load inventory: %w", err)
	}

	// Transaction copy; the persisted snapshot stays untouched until every
	// line has passed.
	tx := make([]domain.InventoryRecord, len(snapshot))
	copy(tx, snapshot)
	index := make(map[string]int, len(tx))
	for i := range tx {
		index[tx[i].ID] = i
	}

	for _, line := range lines {
		i, ok := index[line.ID]
		if !ok {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrItemNotFound, line.ID)
		}
		if tx[i].Stock < line.Quantity {
			return domain.Order{}, fmt.Errorf("%w: %s (need %d, have %d)", ErrInsufficientStock, line.Name, line.Quantity, tx[i].Stock)
		}
		tx[i].Stock -= line.Quantity
	}

	if err := s.inv.SaveInventory(tx); err != nil {
		// Nothing was persisted; no rollback needed.
		return domain.Order{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	order := buildOrder(lines, customer, customerID)
	if err := s.orders.AppendPendingOrder(order); err != nil {
		// Inventory is already decremented on disk; compensate by
		// restoring the pre-transaction snapshot.
		if rbErr := s.inv.SaveInventory(snapshot); rbErr != nil {
			log.Printf("[checkout] rollback failed, inventory and orders may diverge: %v", rbErr)
		}
		return domain.Order{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	s.cart.Clear(sessionID)
	s.publishCreated(order)
	return order, nil
}

func (s *CheckoutService) validateCustomer(c domain.CustomerInfo) error {
	if err := s.validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}
	if _, ok := validate.Phone(c.Phone); !ok {
		return fmt.Errorf("%w: phone", ErrInvalidCustomer)
	}
	if _, ok := validate.DOB(c.DateOfBirth); !ok {
		return fmt.Errorf("%w: dateOfBirth", ErrInvalidCustomer)
	}
	return nil
}

func buildOrder(lines []domain.CartLine, customer domain.CustomerInfo, customerID string) domain.Order {
	total := 0.0
	count := 0
	items := make([]domain.CartLine, len(lines))
	copy(items, lines)
	for _, l := range items {
		total += l.Subtotal()
		count += l.Quantity
	}
	now := time.Now().UTC()
	return domain.Order{
		ID:           fmt.Sprintf("ORD-%s-%s", now.Format("20060102-150405"), uuid.NewString()[:6]),
		CustomerName: customer.FirstName + " " + customer.LastName,
		CustomerID:   customerID,
		CreatedAt:    now.Format(time.RFC3339),
		Status:       domain.StatusPendingCheckout,
		Total:        round2(total),
		ItemCount:    count,
		Items:        items,
		POSOrigin:    true,
	}
}

// publishCreated emits a best-effort order.created event when a broker is
// configured. Failures are logged, never surfaced to the cashier.
func (s *CheckoutService) publishCreated(o domain.Order) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"orderId":   o.ID,
		"customer":  o.CustomerName,
		"total":     o.Total,
		"itemCount": o.ItemCount,
		"status":    o.Status,
	})
	if err != nil {
		return
	}
	go func() {
		if err := s.events.Publish("orders", "order.created", body); err != nil {
			log.Printf("[checkout] publish order.created for %s: %v", o.ID, err)
		}
	}()
}
