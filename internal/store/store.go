package store

import (
	"context"
	"errors"

	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

// ErrNotFound is returned when no conversation exists for the given id.
// Malformed ids are reported the same way; callers never learn the id format.
var ErrNotFound = errors.New("conversation not found")

// Store persists debate conversations. Records are created whole and never
// updated; deletion removes the full record.
type Store interface {
	// Create persists the conversation and returns its assigned id.
	Create(ctx context.Context, conv debate.Conversation) (string, error)
	// List returns lightweight summaries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]debate.Summary, error)
	// Get returns the full record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (debate.Conversation, error)
	// Delete removes the record for id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
