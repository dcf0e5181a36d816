package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidemart/storefront-backend/internal/session"
)

// Service owns one cart per browsing session. Every mutation loads the
// session's cart from the store, applies the change, writes the result back
// and only then notifies subscribers, so readers always observe a fully
// persisted cart.
type Service struct {
	store  session.Store
	events *Events
}

func NewService(store session.Store, events *Events) *Service {
	return &Service{store: store, events: events}
}

func storeKey(sid string) string {
	return fmt.Sprintf("cart:%s", sid)
}

// load rehydrates the session's cart. Missing or corrupt state falls back
// to an empty cart; the anomaly is logged for diagnostics and never
// surfaced to the shopper.
func (s *Service) load(ctx context.Context, sid string) *Cart {
	raw, err := s.store.Get(ctx, storeKey(sid))
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Warn().Err(err).Str("session", sid).Msg("cart state read failed, starting empty")
		}
		return New()
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Warn().Err(err).Str("session", sid).Msg("corrupt cart state, starting empty")
		return New()
	}
	return FromState(st)
}

func (s *Service) persist(ctx context.Context, sid string, ct *Cart) error {
	raw, err := json.Marshal(ct.Snapshot())
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storeKey(sid), raw)
}

// Get returns the session's current cart without mutating it.
func (s *Service) Get(ctx context.Context, sid string) *Cart {
	return s.load(ctx, sid)
}

// AddItem adds one unit of the named product. The price arrives as the raw
// string the storefront read off the product markup; an empty name or a
// price that does not parse as a non-negative number leaves the cart
// unchanged rather than failing.
func (s *Service) AddItem(ctx context.Context, sid, productName, rawPrice string) (*Cart, error) {
	ct := s.load(ctx, sid)
	name := strings.TrimSpace(productName)
	// ParseFloat accepts "NaN" and "Inf" without error; those are just as
	// malformed as "abc" here
	price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
	if name == "" || err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return ct, nil
	}
	item, _ := ct.Add(name, price)
	if err := s.persist(ctx, sid, ct); err != nil {
		return ct, err
	}
	s.events.emit(Event{Name: EventItemAdded, Item: item.ProductName})
	return ct, nil
}

// RemoveItem drops the line with the given id. An unknown id is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sid, id string) (*Cart, error) {
	ct := s.load(ctx, sid)
	item, ok := ct.Remove(id)
	if !ok {
		return ct, nil
	}
	if err := s.persist(ctx, sid, ct); err != nil {
		return ct, err
	}
	s.events.emit(Event{Name: EventItemRemoved, Item: item.ProductName})
	return ct, nil
}

// UpdateQuantity sets an item's quantity. Unknown ids and non-positive
// quantities are ignored without persisting or notifying.
func (s *Service) UpdateQuantity(ctx context.Context, sid, id string, quantity int) (*Cart, error) {
	ct := s.load(ctx, sid)
	if !ct.SetQuantity(id, quantity) {
		return ct, nil
	}
	if err := s.persist(ctx, sid, ct); err != nil {
		return ct, err
	}
	return ct, nil
}

// ApplyPromo applies a promo code to the session's cart. Only a successful
// application changes state and gets persisted.
func (s *Service) ApplyPromo(ctx context.Context, sid, code string) (*Cart, PromoResult, error) {
	ct := s.load(ctx, sid)
	res := ct.ApplyPromo(code)
	if !res.Applied {
		return ct, res, nil
	}
	if err := s.persist(ctx, sid, ct); err != nil {
		return ct, res, err
	}
	return ct, res, nil
}

// Clear empties the cart, drops the discount and removes the persisted
// state entirely.
func (s *Service) Clear(ctx context.Context, sid string) (*Cart, error) {
	ct := s.load(ctx, sid)
	ct.Reset()
	if err := s.store.Delete(ctx, storeKey(sid)); err != nil {
		return ct, err
	}
	s.events.emit(Event{Name: EventCartCleared})
	return ct, nil
}
