package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

func sampleConversation(situationText string, createdAt time.Time) debate.Conversation {
	return debate.Conversation{
		Situation: situationText,
		Messages: []debate.Turn{
			{Role: debate.RoleUser, Content: situationText, Turn: 0},
			{Role: debate.RoleSummary, Content: "Balanced Decision: test", Turn: 1},
		},
		FinalDecision: "Balanced Decision: test",
		Tags:          []string{"general"},
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, sampleConversation("situation one", time.Now().UTC()))
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	conv, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if conv.ID != id {
		t.Fatalf("expected id %q on the record, got %q", id, conv.ID)
	}
	if conv.Situation != "situation one" {
		t.Fatalf("unexpected situation: %q", conv.Situation)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Now().UTC()

	if _, err := s.Create(ctx, sampleConversation("older", base.Add(-time.Hour))); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if _, err := s.Create(ctx, sampleConversation("newer", base)); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	items, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(items))
	}
	if items[0].Situation != "newer" || items[1].Situation != "older" {
		t.Fatalf("summaries not newest first: %v", items)
	}

	limited, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(limited) != 1 || limited[0].Situation != "newer" {
		t.Fatalf("limit not applied: %v", limited)
	}
}

func TestMemoryStoreDeleteNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	id, err := s.Create(ctx, sampleConversation("to delete", time.Now().UTC()))
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
