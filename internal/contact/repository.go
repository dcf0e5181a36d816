package contact

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tidemart/storefront-backend/internal/session"
)

// Repository defines persistence operations for contact submissions.
type Repository interface {
	Append(ctx context.Context, sid string, sub Submission) error
	ListBySession(ctx context.Context, sid string) ([]Submission, error)
}

// StoreRepository appends submissions to a session-scoped list.
type StoreRepository struct {
	store session.Store
}

func NewStoreRepository(store session.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func contactKey(sid string) string {
	return fmt.Sprintf("contact:%s", sid)
}

func (r *StoreRepository) Append(ctx context.Context, sid string, sub Submission) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	return r.store.Push(ctx, contactKey(sid), raw)
}

func (r *StoreRepository) ListBySession(ctx context.Context, sid string) ([]Submission, error) {
	entries, err := r.store.List(ctx, contactKey(sid))
	if err != nil {
		return nil, err
	}
	out := make([]Submission, 0, len(entries))
	for _, e := range entries {
		var sub Submission
		if err := json.Unmarshal(e, &sub); err != nil {
			log.Warn().Err(err).Str("session", sid).Msg("skipping corrupt contact record")
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}
