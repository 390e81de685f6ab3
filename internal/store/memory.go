package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

// MemoryStore keeps conversations in process memory. It backs the service when
// no DATABASE_URL is configured and is the store used by handler tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]debate.Conversation
}

// NewMemoryStore bootstraps an empty in-memory conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]debate.Conversation)}
}

// Create stores the conversation under a fresh uuid.
func (s *MemoryStore) Create(_ context.Context, conv debate.Conversation) (string, error) {
	id := uuid.NewString()
	conv.ID = id

	s.mu.Lock()
	s.items[id] = conv
	s.mu.Unlock()

	return id, nil
}

// List returns summaries sorted newest first.
func (s *MemoryStore) List(_ context.Context, limit int) ([]debate.Summary, error) {
	s.mu.RLock()
	all := make([]debate.Conversation, 0, len(s.items))
	for _, conv := range s.items {
		all = append(all, conv)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	summaries := make([]debate.Summary, 0, len(all))
	for _, conv := range all {
		summaries = append(summaries, debate.Summary{
			ID:            conv.ID,
			Situation:     conv.Situation,
			FinalDecision: conv.FinalDecision,
			CreatedAt:     conv.CreatedAt,
			Tags:          conv.Tags,
		})
	}
	return summaries, nil
}

// Get retrieves a conversation by id.
func (s *MemoryStore) Get(_ context.Context, id string) (debate.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.items[id]
	if !ok {
		return debate.Conversation{}, ErrNotFound
	}
	return conv, nil
}

// Delete removes a conversation by id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
