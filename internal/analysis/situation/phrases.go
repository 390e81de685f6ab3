package situation

import "strings"

const (
	minPhraseLen = 4
	maxPhraseLen = 140
	maxPhrases   = 4
)

// Phrases splits a situation into up to four short candidate phrases on
// sentence punctuation. Question and exclamation marks are treated as
// sentence breaks; chunks outside the [4,140] length window are discarded.
// If nothing qualifies, the whole trimmed situation is returned as a single
// phrase, or nothing at all when the situation is blank.
func Phrases(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	normalized := strings.NewReplacer("?", ".", "!", ".").Replace(trimmed)

	var phrases []string
	for _, chunk := range strings.Split(normalized, ".") {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < minPhraseLen || len(chunk) > maxPhraseLen {
			continue
		}
		phrases = append(phrases, chunk)
		if len(phrases) == maxPhrases {
			break
		}
	}

	if len(phrases) == 0 {
		return []string{trimmed}
	}
	return phrases
}
