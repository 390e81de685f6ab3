package debate

import (
	"strings"

	"github.com/minsplit/minsplit/backend/internal/analysis/situation"
	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

// branch selects which of the two mutually exclusive narrative skeletons a
// debate follows. The choice is made once per situation.
type branch int

const (
	genericBranch branch = iota
	examBranch
)

// point is one paired exchange: the emotional voice speaks, the logical voice
// answers. The final point of every script is the self-critique pair.
type point struct {
	emotional string
	logical   string
}

// script is a fully resolved narrative: openers, paired points in emission
// order, and the recommended action closing the debate.
type script struct {
	emotionalOpener string
	logicalOpener   string
	points          []point
	action          string
}

// examGateKeywords trigger the exam-night branch when the education topic is
// also present.
var examGateKeywords = []string{"exam", "test", "math"}

// Generate turns a situation into an ordered transcript, the final balanced
// decision, and the inferred topic tags. It is a pure function, total over all
// inputs including the empty string.
func Generate(text string) ([]debate.Turn, string, []situation.Topic) {
	trimmed := strings.TrimSpace(text)

	tags := situation.Topics(trimmed)
	phrases := situation.Phrases(trimmed)
	tone := situation.AnalyzeTone(trimmed)

	normalized := strings.ToLower(trimmed)

	var sc script
	switch selectBranch(tags, normalized) {
	case examBranch:
		sc = examScript(phrases, strings.Contains(normalized, "cricket"))
	default:
		sc = genericScript(phrases, tone, tags)
	}

	final := decisionPreamble + sc.action
	return assemble(trimmed, sc, final), final, tags
}

func selectBranch(tags []situation.Topic, normalized string) branch {
	if !situation.HasTopic(tags, situation.TopicEducation) {
		return genericBranch
	}
	for _, keyword := range examGateKeywords {
		if strings.Contains(normalized, keyword) {
			return examBranch
		}
	}
	return genericBranch
}

// assemble numbers the turns: user at 0, the opener pair at 1 and 2, then each
// point as an emotional/logical pair, then the summary carrying the final
// decision.
func assemble(situationText string, sc script, final string) []debate.Turn {
	turns := make([]debate.Turn, 0, 2*len(sc.points)+4)
	turns = append(turns,
		debate.Turn{Role: debate.RoleUser, Content: situationText, Turn: 0},
		debate.Turn{Role: debate.RoleEmotional, Content: sc.emotionalOpener, Turn: 1},
		debate.Turn{Role: debate.RoleLogical, Content: sc.logicalOpener, Turn: 2},
	)

	next := 3
	for _, p := range sc.points {
		turns = append(turns, debate.Turn{Role: debate.RoleEmotional, Content: p.emotional, Turn: next})
		next++
		turns = append(turns, debate.Turn{Role: debate.RoleLogical, Content: p.logical, Turn: next})
		next++
	}

	turns = append(turns, debate.Turn{Role: debate.RoleSummary, Content: final, Turn: next})
	return turns
}
