package cart

import (
	"fmt"
	"strings"
)

// promoCodes maps uppercase promo codes to discount fractions. Reference
// data, not configuration: the set of codes does not change at runtime.
var promoCodes = map[string]float64{
	"SAVE10":   0.10,
	"SAVE20":   0.20,
	"SUMMER20": 0.20,
}

// PromoResult reports the outcome of a promo application. An unknown code
// is an expected outcome carried back to the caller, not an error.
type PromoResult struct {
	Applied  bool    `json:"applied"`
	Message  string  `json:"message"`
	Discount float64 `json:"discount"`
}

// ApplyPromo looks the code up after trimming whitespace and upper-casing.
// A known code replaces the current discount (codes never stack); an
// unknown code leaves it untouched.
func (ct *Cart) ApplyPromo(code string) PromoResult {
	fraction, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return PromoResult{Message: "Invalid promo code"}
	}
	ct.DiscountPercent = fraction
	return PromoResult{
		Applied:  true,
		Discount: ct.DiscountAmount(),
		Message:  fmt.Sprintf("Promo code applied! You save $%.2f", ct.DiscountAmount()),
	}
}
