package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tidemart/storefront-backend/internal/cart"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMissingFields = errors.New("required customer fields missing")
)

// Customer carries the checkout form fields.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Zip       string
}

func (c Customer) validate() error {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" || c.Address == "" || c.City == "" {
		return ErrMissingFields
	}
	return nil
}

// Service assembles orders from the session's cart and records them.
type Service struct {
	repo Repository
	cart *cart.Service
}

func NewService(repo Repository, carts *cart.Service) *Service {
	return &Service{repo: repo, cart: carts}
}

// Checkout snapshots the session's cart into an order, appends it to the
// session's order list and then clears the cart. A checkout against an
// empty cart is rejected before anything is written.
func (s *Service) Checkout(ctx context.Context, sid string, customer Customer) (Order, error) {
	if err := customer.validate(); err != nil {
		return Order{}, err
	}

	ct := s.cart.Get(ctx, sid)
	if len(ct.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]cart.Item, len(ct.Items))
	copy(items, ct.Items)

	ord := Order{
		ID:        uuid.NewString(),
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		Zip:       customer.Zip,
		OrderDate: time.Now().UTC().Format(time.RFC3339),
		Total:     ct.Total(),
		Items:     items,
	}

	if err := s.repo.Append(ctx, sid, ord); err != nil {
		return Order{}, err
	}

	// a completed checkout empties the cart
	if _, err := s.cart.Clear(ctx, sid); err != nil {
		return ord, err
	}
	return ord, nil
}

// ListBySession returns the session's submitted orders in submission order.
func (s *Service) ListBySession(ctx context.Context, sid string) ([]Order, error) {
	return s.repo.ListBySession(ctx, sid)
}
