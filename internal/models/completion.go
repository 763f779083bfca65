package models

import "time"

type CompletionSource string

const (
	SourceManual CompletionSource = "manual"
	SourceAuto   CompletionSource = "auto"
)

// Reaction is an emoji attached to a completion by another member.
type Reaction struct {
	Emoji    string `json:"emoji"`
	MemberID string `json:"member_id"`
}

// Completion records a habit being done on a given calendar day. One
// completion per habit per day is the natural key; the engine deduplicates
// defensively before any streak math.
type Completion struct {
	ID        string           `json:"id"`
	HabitID   string           `json:"habit_id"`
	MemberID  string           `json:"member_id,omitempty"`
	Day       string           `json:"day"` // YYYY-MM-DD format
	Quantity  float64          `json:"quantity,omitempty"`
	Reactions []Reaction       `json:"reactions,omitempty"`
	Source    CompletionSource `json:"source,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
