package domain

// Product categories carried by the storefront catalog.
const (
	CategoryFlower       = "Flower"
	CategoryConcentrates = "Concentrates"
	CategoryVapes        = "Vapes"
	CategoryEdibles      = "Edibles"
)

// Categories lists every valid product category.
var Categories = []string{CategoryFlower, CategoryConcentrates, CategoryVapes, CategoryEdibles}

// Order statuses. A checkout always produces StatusPendingCheckout; the admin
// dashboard moves orders to one of the fulfilled statuses.
const (
	StatusPendingCheckout = "Pending Checkout"
	StatusInStore         = "In-Store"
	StatusOnline          = "Online"
)

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Tag      string  `json:"tag"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
}

// InventoryRecord is a catalog product plus its stock-keeping attributes.
// Stock never goes negative; the checkout flow is the only writer that
// decrements it, and it never deletes records.
type InventoryRecord struct {
	Product
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Supplier          string  `json:"supplier"`
	PurchasePrice     float64 `json:"purchasePrice"`
	LastRestock       string  `json:"lastRestock"`
	Notes             string  `json:"notes,omitempty"`
}

// CartLine is a product in the cart with a desired quantity (always > 0;
// a quantity that reaches zero removes the line).
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	CustomerID   string     `json:"customerId"`
	CreatedAt    string     `json:"createdAt"`
	Status       string     `json:"status"`
	Total        float64    `json:"total"`
	ItemCount    int        `json:"itemCount"`
	Items        []CartLine `json:"items"`
	POSOrigin    bool       `json:"posOrigin"`
}

// Availability is the stock status reported to the POS front end. The
// boundary between IN_STOCK and LOW_STOCK is the record's own threshold.
type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}

// ReelSlide is one entry of the promotional story reel shown on the
// storefront, including its display-only flags.
type ReelSlide struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Image           string `json:"image"`
	BadgeType       string `json:"badgeType,omitempty"`
	PulsatingBorder bool   `json:"pulsatingBorder"`
}
