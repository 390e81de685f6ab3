package situation

import "strings"

// Topic is a coarse subject label inferred from keyword presence.
type Topic string

const (
	TopicCareer        Topic = "career"
	TopicFinance       Topic = "finance"
	TopicRelationships Topic = "relationships"
	TopicHealth        Topic = "health"
	TopicEducation     Topic = "education"
	TopicRelocation    Topic = "relocation"
	TopicPurchase      Topic = "purchase"
	TopicHobby         Topic = "hobby"
	TopicGeneral       Topic = "general"
)

type topicKeywords struct {
	topic    Topic
	keywords []string
}

// Iteration order determines the order of the returned tag set, so this is a
// slice rather than a map.
var topicTable = []topicKeywords{
	{TopicCareer, []string{"job", "career", "offer", "promotion", "switch", "role"}},
	{TopicFinance, []string{"salary", "money", "budget", "investment", "loan", "debt", "buy", "rent"}},
	{TopicRelationships, []string{"relationship", "partner", "friend", "family", "marriage", "dating"}},
	{TopicHealth, []string{"health", "exercise", "diet", "sleep", "stress", "burnout"}},
	{TopicEducation, []string{"college", "course", "study", "studying", "degree", "learn", "bootcamp", "exam", "test", "math"}},
	{TopicRelocation, []string{"move", "relocate", "city", "country"}},
	{TopicPurchase, []string{"buy", "purchase", "upgrade", "phone", "car", "house"}},
	{TopicHobby, []string{"cricket", "football", "soccer", "game", "gaming", "sport", "sports", "music"}},
}

// Topics maps a situation to its topic tags by substring matching against the
// keyword table. The result is never empty: TopicGeneral is returned when no
// keyword matches, including for the empty string.
func Topics(text string) []Topic {
	normalized := strings.ToLower(text)

	var topics []Topic
	for _, entry := range topicTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				topics = append(topics, entry.topic)
				break
			}
		}
	}

	if len(topics) == 0 {
		topics = append(topics, TopicGeneral)
	}
	return topics
}

// HasTopic reports whether the given topic is present in the tag set.
func HasTopic(topics []Topic, topic Topic) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}
