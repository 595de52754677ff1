package domain

type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Hash          string `json:"passwordHash"`
	Role          string `json:"role"` // USER | ADMIN
	RewardsPoints int    `json:"rewardsPoints"`
}

// CustomerInfo is what the checkout flow requires before finalizing.
// All four fields must be non-empty; the flow owns it only for the
// duration of a single checkout.
type CustomerInfo struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
}
