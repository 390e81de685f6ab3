package debate_test

import (
	"context"
	"errors"
	"testing"

	debateService "github.com/minsplit/minsplit/backend/internal/service/debate"
	"github.com/minsplit/minsplit/backend/internal/store"
)

func TestServiceCreateDebatePersists(t *testing.T) {
	svc := debateService.NewService(store.NewMemoryStore())
	ctx := context.Background()

	conv, err := svc.CreateDebate(ctx, "  Should I buy a house or rent?  ")
	if err != nil {
		t.Fatalf("CreateDebate err: %v", err)
	}
	if conv.ID == "" {
		t.Fatal("expected an assigned conversation id")
	}
	if conv.Situation != "Should I buy a house or rent?" {
		t.Fatalf("situation not trimmed: %q", conv.Situation)
	}

	stored, err := svc.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation err: %v", err)
	}
	if stored.FinalDecision != conv.FinalDecision {
		t.Fatalf("stored final decision mismatch: %q vs %q", stored.FinalDecision, conv.FinalDecision)
	}
	if len(stored.Messages) != len(conv.Messages) {
		t.Fatalf("stored transcript length mismatch: %d vs %d", len(stored.Messages), len(conv.Messages))
	}
}

func TestServiceCreateDebateRejectsBlankSituation(t *testing.T) {
	svc := debateService.NewService(store.NewMemoryStore())

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.CreateDebate(context.Background(), text); !errors.Is(err, debateService.ErrSituationRequired) {
			t.Fatalf("CreateDebate(%q) err = %v, want ErrSituationRequired", text, err)
		}
	}

	items, err := svc.ListConversations(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListConversations err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected situations must not be persisted, found %d records", len(items))
	}
}

func TestServiceDeleteThenGetNotFound(t *testing.T) {
	svc := debateService.NewService(store.NewMemoryStore())
	ctx := context.Background()

	conv, err := svc.CreateDebate(ctx, "Should I relocate to another city for a promotion?")
	if err != nil {
		t.Fatalf("CreateDebate err: %v", err)
	}

	if err := svc.DeleteConversation(ctx, conv.ID); err != nil {
		t.Fatalf("DeleteConversation err: %v", err)
	}

	if _, err := svc.GetConversation(ctx, conv.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
