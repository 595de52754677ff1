package services

import "errors"

// Condition sentinels for the cart and checkout flows. Every one of these
// is recoverable and is converted to a user-facing message at the handler
// boundary; nothing here propagates as an unhandled fault.
var (
	// ErrOutOfStock: adding one more unit would exceed known stock; the
	// cart is left unchanged.
	ErrOutOfStock = errors.New("out of stock")

	// ErrStockLimit: a quantity update was clamped to available stock.
	// The clamped value IS applied; the error is a notification.
	ErrStockLimit = errors.New("stock limit reached")

	// ErrItemNotFound: a cart line references a product absent from the
	// current inventory snapshot. Checkout aborts before any mutation.
	ErrItemNotFound = errors.New("item not found in inventory")

	// ErrInsufficientStock: live stock is below the requested quantity.
	// Checkout aborts before any mutation.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrCartEmpty: checkout requires at least one line.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrInvalidCustomer: one or more required customer fields failed
	// validation.
	ErrInvalidCustomer = errors.New("invalid customer info")

	// ErrSubmission: the order could not be persisted after inventory was
	// already decremented; a compensating rollback was attempted and the
	// operation is retryable.
	ErrSubmission = errors.New("order submission failed")
)
