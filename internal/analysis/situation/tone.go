package situation

import "strings"

// Tone is a coarse sentiment label used to phrase the debate opener.
type Tone string

const (
	LeansPositive Tone = "leans positive"
	LeansCautious Tone = "leans cautious"
	Mixed         Tone = "mixed"
)

var positiveKeywords = []string{
	"excited", "happy", "love", "great", "amazing", "dream", "like",
}

var negativeKeywords = []string{
	"scared", "anxious", "worried", "stress", "burnout", "bad", "risky",
	"don't feel like", "bored", "tired",
}

// AnalyzeTone classifies the sentiment of a situation. A text matching only
// positive keywords leans positive, only negative keywords leans cautious, and
// anything else (both or neither) is mixed.
func AnalyzeTone(text string) Tone {
	normalized := strings.ToLower(text)

	positive := containsAny(normalized, positiveKeywords)
	negative := containsAny(normalized, negativeKeywords)

	switch {
	case positive && !negative:
		return LeansPositive
	case negative && !positive:
		return LeansCautious
	default:
		return Mixed
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
