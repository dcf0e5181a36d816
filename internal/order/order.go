package order

import "github.com/tidemart/storefront-backend/internal/cart"

// Order represents a completed checkout for one session. There is no
// payment processing behind it; the record is what the shopper confirmed.
type Order struct {
	ID        string      `json:"orderId"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Zip       string      `json:"zip,omitempty"`
	OrderDate string      `json:"orderDate"`
	Total     float64     `json:"total"`
	Items     []cart.Item `json:"items"`
}
