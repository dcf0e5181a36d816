package cart

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// State is the persisted shape of a cart. Derived totals are never stored;
// only items and the discount fraction survive the round trip, stamped with
// the time of the write.
type State struct {
	Items           []Item    `json:"items"`
	DiscountPercent float64   `json:"discountPercent"`
	Timestamp       time.Time `json:"timestamp"`
}

// Snapshot captures the cart for persistence.
func (ct *Cart) Snapshot() State {
	items := make([]Item, len(ct.Items))
	copy(items, ct.Items)
	return State{
		Items:           items,
		DiscountPercent: ct.DiscountPercent,
		Timestamp:       time.Now().UTC(),
	}
}

// FromState rebuilds a cart from persisted state. Lines that violate the
// item invariants are dropped, missing ids are regenerated and an
// out-of-range discount falls back to zero, so a damaged record degrades
// to the nearest valid cart instead of failing.
func FromState(st State) *Cart {
	ct := New()
	for _, it := range st.Items {
		if it.ProductName == "" || it.Price < 0 || it.Quantity < 1 ||
			math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			continue
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		ct.Items = append(ct.Items, it)
	}
	if st.DiscountPercent >= 0 && st.DiscountPercent <= 1 {
		ct.DiscountPercent = st.DiscountPercent
	}
	return ct
}
