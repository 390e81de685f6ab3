package debate

import "time"

// Role identifies which voice produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleEmotional Role = "emotional"
	RoleLogical   Role = "logical"
	RoleSummary   Role = "summary"
)

// Turn is one emitted line of a debate transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Turn    int    `json:"turn"`
}

// Conversation is the persisted record of one generated debate.
// Records are immutable after creation; there is no update path.
type Conversation struct {
	ID            string    `json:"id,omitempty"`
	Situation     string    `json:"situation"`
	Messages      []Turn    `json:"messages"`
	FinalDecision string    `json:"final_decision"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Summary is the lightweight projection returned by list endpoints.
type Summary struct {
	ID            string    `json:"id"`
	Situation     string    `json:"situation"`
	FinalDecision string    `json:"final_decision"`
	CreatedAt     time.Time `json:"created_at"`
	Tags          []string  `json:"tags"`
}
