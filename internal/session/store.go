package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session key not found")

// Store is a session-scoped key-value store. Values live only as long as
// the browsing session that wrote them; each session owns its keys
// exclusively, so implementations only need to be safe for concurrent use
// across sessions, not coordinated within one.
//
// Push and List manage append-only lists (submitted orders, contact
// messages) kept separately from single-value keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	Push(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, key string) ([][]byte, error)
}
