package persona

// Persona captures one of the fixed rhetorical voices exposed to the frontend.
type Persona struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Tone        string   `json:"tone"`
	Description string   `json:"description,omitempty"`
	Strengths   []string `json:"strengths,omitempty"`
}

// Seed provides the fixed debate voices. The emotional and logical personas
// author the transcript turns; the summary persona owns the closing verdict.
func Seed() []Persona {
	return []Persona{
		{
			ID:          "emotional",
			Name:        "The Empath",
			Role:        "emotional",
			Tone:        "warm, validating, protective",
			Description: "Speaks for well-being, values, and how the choice feels to live with day to day.",
			Strengths:   []string{"naming feelings", "protecting energy", "values alignment"},
		},
		{
			ID:          "logical",
			Name:        "The Analyst",
			Role:        "logical",
			Tone:        "structured, probing, risk-aware",
			Description: "Speaks for evidence, time horizons, and reversible experiments over irreversible bets.",
			Strengths:   []string{"framing trade-offs", "risk vs. reward", "designing small tests"},
		},
		{
			ID:          "summary",
			Name:        "The Mediator",
			Role:        "summary",
			Tone:        "balanced, decisive",
			Description: "Blends both voices into a single balanced decision with one concrete next step.",
			Strengths:   []string{"synthesis", "actionable next steps"},
		},
	}
}
