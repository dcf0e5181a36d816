package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tidemart/storefront-backend/internal/session"
)

// Repository defines persistence operations for a session's orders.
type Repository interface {
	Append(ctx context.Context, sid string, ord Order) error
	ListBySession(ctx context.Context, sid string) ([]Order, error)
}

// StoreRepository keeps each session's orders as an append-only list in
// the session store, next to the cart state but under its own key.
type StoreRepository struct {
	store session.Store
}

func NewStoreRepository(store session.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func ordersKey(sid string) string {
	return fmt.Sprintf("orders:%s", sid)
}

func (r *StoreRepository) Append(ctx context.Context, sid string, ord Order) error {
	raw, err := json.Marshal(ord)
	if err != nil {
		return err
	}
	return r.store.Push(ctx, ordersKey(sid), raw)
}

func (r *StoreRepository) ListBySession(ctx context.Context, sid string) ([]Order, error) {
	entries, err := r.store.List(ctx, ordersKey(sid))
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(entries))
	for _, e := range entries {
		var ord Order
		if err := json.Unmarshal(e, &ord); err != nil {
			// skip a damaged record rather than losing the rest
			log.Warn().Err(err).Str("session", sid).Msg("skipping corrupt order record")
			continue
		}
		out = append(out, ord)
	}
	return out, nil
}
