package debate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/minsplit/minsplit/backend/internal/analysis/situation"
	"github.com/minsplit/minsplit/backend/internal/model/debate"
	"github.com/minsplit/minsplit/backend/internal/store"
)

var ErrSituationRequired = errors.New("situation is required")

// DefaultListLimit bounds conversation listings when the caller does not ask
// for a specific limit.
const DefaultListLimit = 50

// Service generates debates and persists the resulting conversations.
type Service struct {
	store store.Store
}

// NewService wires the debate service to a conversation store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CreateDebate generates a debate for the situation and persists it. The
// returned conversation carries the id assigned by the store.
func (s *Service) CreateDebate(ctx context.Context, situationText string) (debate.Conversation, error) {
	trimmed := strings.TrimSpace(situationText)
	if trimmed == "" {
		return debate.Conversation{}, ErrSituationRequired
	}

	messages, finalDecision, tags := Generate(situationText)

	now := time.Now().UTC()
	conv := debate.Conversation{
		Situation:     trimmed,
		Messages:      messages,
		FinalDecision: finalDecision,
		Tags:          topicStrings(tags),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.store.Create(ctx, conv)
	if err != nil {
		return debate.Conversation{}, fmt.Errorf("persist conversation: %w", err)
	}
	conv.ID = id
	return conv, nil
}

// ListConversations returns lightweight summaries, newest first.
func (s *Service) ListConversations(ctx context.Context, limit int) ([]debate.Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.store.List(ctx, limit)
}

// GetConversation fetches a full stored conversation by id.
func (s *Service) GetConversation(ctx context.Context, id string) (debate.Conversation, error) {
	return s.store.Get(ctx, id)
}

// DeleteConversation removes a stored conversation by id.
func (s *Service) DeleteConversation(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func topicStrings(topics []situation.Topic) []string {
	tags := make([]string, len(topics))
	for i, topic := range topics {
		tags[i] = string(topic)
	}
	return tags
}
