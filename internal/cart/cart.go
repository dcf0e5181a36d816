package cart

import "github.com/google/uuid"

// TaxRate is the fraction of the discounted subtotal charged as tax.
const TaxRate = 0.10

// Item is one product line in a cart. The id is assigned at creation and is
// the only key used for remove/update lookups; the product name is the
// deduplication key for adds.
type Item struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart holds the session's selected items plus the active discount. All
// totals are derived from Items and DiscountPercent on every call so they
// can never drift from the item list.
type Cart struct {
	Items           []Item  `json:"items"`
	DiscountPercent float64 `json:"discountPercent"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add increments the quantity of the line with the same product name, or
// appends a new line with quantity 1. A repeated add never changes the unit
// price recorded on the first add. Returns the affected item and whether a
// new line was created.
func (ct *Cart) Add(productName string, price float64) (Item, bool) {
	for idx := range ct.Items {
		if ct.Items[idx].ProductName == productName {
			ct.Items[idx].Quantity++
			return ct.Items[idx], false
		}
	}
	item := Item{
		ID:          uuid.NewString(),
		ProductName: productName,
		Price:       price,
		Quantity:    1,
	}
	ct.Items = append(ct.Items, item)
	return item, true
}

// Remove deletes the item with the given id and reports what was removed.
// Unknown ids are ignored.
func (ct *Cart) Remove(id string) (Item, bool) {
	for idx, it := range ct.Items {
		if it.ID == id {
			ct.Items = append(ct.Items[:idx], ct.Items[idx+1:]...)
			return it, true
		}
	}
	return Item{}, false
}

// SetQuantity replaces an item's quantity. Non-positive quantities and
// unknown ids leave the cart untouched; dropping a line is always done
// through Remove, never by zeroing its quantity.
func (ct *Cart) SetQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	for idx := range ct.Items {
		if ct.Items[idx].ID == id {
			ct.Items[idx].Quantity = quantity
			return true
		}
	}
	return false
}

func (ct *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range ct.Items {
		sum += it.LineTotal()
	}
	return sum
}

func (ct *Cart) DiscountAmount() float64 {
	return ct.Subtotal() * ct.DiscountPercent
}

func (ct *Cart) Tax() float64 {
	return (ct.Subtotal() - ct.DiscountAmount()) * TaxRate
}

func (ct *Cart) Total() float64 {
	return ct.Subtotal() - ct.DiscountAmount() + ct.Tax()
}

// Reset empties the cart and drops any applied discount.
func (ct *Cart) Reset() {
	ct.Items = []Item{}
	ct.DiscountPercent = 0
}
