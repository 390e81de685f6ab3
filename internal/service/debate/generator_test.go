package debate

import (
	"strings"
	"testing"

	"github.com/minsplit/minsplit/backend/internal/analysis/situation"
	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

func assertTranscriptShape(t *testing.T, messages []debate.Turn, situationText, finalDecision string) {
	t.Helper()

	if len(messages) < 4 {
		t.Fatalf("transcript too short: %d turns", len(messages))
	}

	first := messages[0]
	if first.Role != debate.RoleUser || first.Content != strings.TrimSpace(situationText) || first.Turn != 0 {
		t.Fatalf("unexpected first turn: %+v", first)
	}

	last := messages[len(messages)-1]
	if last.Role != debate.RoleSummary || last.Content != finalDecision {
		t.Fatalf("unexpected last turn: %+v", last)
	}

	for i, turn := range messages {
		if turn.Turn != i {
			t.Fatalf("turn %d numbered %d", i, turn.Turn)
		}
	}

	// Between the user turn and the summary, emotional and logical strictly
	// alternate in pairs.
	for i := 1; i < len(messages)-1; i++ {
		want := debate.RoleEmotional
		if i%2 == 0 {
			want = debate.RoleLogical
		}
		if messages[i].Role != want {
			t.Fatalf("turn %d has role %q, want %q", i, messages[i].Role, want)
		}
	}
}

func TestGenerateGenericTranscript(t *testing.T) {
	text := "I feel anxious about my job. Should I take the offer? It pays more!"
	messages, finalDecision, tags := Generate(text)

	assertTranscriptShape(t, messages, text, finalDecision)

	if !situation.HasTopic(tags, situation.TopicCareer) {
		t.Fatalf("expected career tag, got %v", tags)
	}
	if !strings.HasPrefix(finalDecision, "Balanced Decision: choose the path that preserves mental health and values while maximizing reversible upside. ") {
		t.Fatalf("unexpected final decision prefix: %q", finalDecision)
	}
	if !strings.Contains(finalDecision, "3 success metrics") {
		t.Fatalf("expected the career action, got %q", finalDecision)
	}

	// Three phrases plus closing and self-critique pairs after the openers.
	wantTurns := 1 + 2 + 2*(3+2) + 1
	if len(messages) != wantTurns {
		t.Fatalf("expected %d turns, got %d", wantTurns, len(messages))
	}
}

func TestGenerateFinanceAction(t *testing.T) {
	_, finalDecision, tags := Generate("Should I buy a house or rent?")

	if !situation.HasTopic(tags, situation.TopicFinance) || !situation.HasTopic(tags, situation.TopicPurchase) {
		t.Fatalf("expected finance and purchase tags, got %v", tags)
	}
	if !strings.Contains(finalDecision, "30-60-90 day budget") {
		t.Fatalf("expected the finance action, got %q", finalDecision)
	}
}

func TestGenerateActionPrecedence(t *testing.T) {
	// Health is checked last, so it wins over finance and career.
	_, finalDecision, _ := Generate("New job offer with a higher salary, but I fear burnout")

	if !strings.Contains(finalDecision, "minimal viable routine") {
		t.Fatalf("expected the health action to win, got %q", finalDecision)
	}
}

func TestGenerateExamBranchWithCricket(t *testing.T) {
	text := "I don't feel like studying for my math exam tonight, I'd rather play cricket"
	messages, finalDecision, tags := Generate(text)

	assertTranscriptShape(t, messages, text, finalDecision)

	if !situation.HasTopic(tags, situation.TopicEducation) {
		t.Fatalf("expected education tag, got %v", tags)
	}

	var sawCricketReward, sawIfThen bool
	for _, turn := range messages {
		if turn.Role == debate.RoleEmotional && strings.Contains(turn.Content, "reward, not the escape") {
			sawCricketReward = true
		}
		if turn.Role == debate.RoleLogical && strings.Contains(turn.Content, "if-then plan") {
			sawIfThen = true
		}
	}
	if !sawCricketReward || !sawIfThen {
		t.Fatalf("expected the cricket reward pair in the exam transcript")
	}

	if !strings.Contains(finalDecision, "90 minutes of focused practice") {
		t.Fatalf("expected the exam action, got %q", finalDecision)
	}
}

func TestGenerateExamBranchWithoutCricket(t *testing.T) {
	messages, _, _ := Generate("I have a big exam tomorrow and need to study")

	// The fixed exam action still mentions cricket in the summary; only the
	// reward pair must be absent.
	for _, turn := range messages {
		if turn.Role == debate.RoleSummary {
			continue
		}
		if strings.Contains(turn.Content, "cricket") || strings.Contains(turn.Content, "Cricket") {
			t.Fatalf("cricket pair emitted without a cricket mention: %q", turn.Content)
		}
	}
}

func TestGenerateEducationWithoutExamKeywordStaysGeneric(t *testing.T) {
	// "college" tags education but carries no exam-gate keyword.
	_, finalDecision, tags := Generate("Should I go back to college for a music degree")

	if !situation.HasTopic(tags, situation.TopicEducation) {
		t.Fatalf("expected education tag, got %v", tags)
	}
	if strings.Contains(finalDecision, "90 minutes of focused practice") {
		t.Fatalf("exam action chosen on the generic branch: %q", finalDecision)
	}
}

func TestGenerateEmptySituationIsTotal(t *testing.T) {
	messages, finalDecision, tags := Generate("   ")

	assertTranscriptShape(t, messages, "", finalDecision)
	if len(tags) != 1 || tags[0] != situation.TopicGeneral {
		t.Fatalf("expected [general] tags for empty input, got %v", tags)
	}
	// No phrases survive, so only the closing and self-critique pairs follow
	// the openers.
	wantTurns := 1 + 2 + 2*2 + 1
	if len(messages) != wantTurns {
		t.Fatalf("expected %d turns, got %d", wantTurns, len(messages))
	}
}
