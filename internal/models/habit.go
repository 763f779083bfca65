package models

import "time"

type ScheduleType string

const (
	ScheduleDaily        ScheduleType = "daily"
	ScheduleSpecificDays ScheduleType = "specific_days"
	ScheduleInterval     ScheduleType = "interval"
	ScheduleWeekly       ScheduleType = "weekly"
)

// Schedule is a habit's recurrence rule. Which extra fields matter depends
// on Type; the others are left zero.
type Schedule struct {
	Type         ScheduleType   `json:"type"`
	DaysOfWeek   []time.Weekday `json:"days_of_week,omitempty"` // specific_days: 0=Sunday..6=Saturday
	IntervalDays int            `json:"interval_days,omitempty"`
	TimesPerWeek int            `json:"times_per_week,omitempty"`
}

type WagerStatus string

const (
	WagerPending WagerStatus = "pending"
	WagerWon     WagerStatus = "won"
	WagerLost    WagerStatus = "lost"
)

// Wager is a social bet that the habit's streak reaches TargetStreak.
type Wager struct {
	IsActive     bool        `json:"is_active"`
	Description  string      `json:"description,omitempty"`
	TargetStreak int         `json:"target_streak"`
	StartDate    string      `json:"start_date,omitempty"` // YYYY-MM-DD format
	Participants []string    `json:"participants,omitempty"`
	Status       WagerStatus `json:"status"`
	WinnerID     string      `json:"winner_id,omitempty"`
}

// Habit represents a recurring commitment shared within a space.
//
// CurrentStreak, BestStreak and LastCompletedAt are derived fields: the
// engine recomputes them from the completion log after every mutation and
// the caller persists them back onto the record.
type Habit struct {
	ID        string   `json:"id"`
	SpaceID   string   `json:"space_id,omitempty"`
	Name      string   `json:"name"`
	Schedule  Schedule `json:"schedule"`
	Assignees []string `json:"assignees,omitempty"`

	CurrentStreak   int        `json:"current_streak"`
	BestStreak      int        `json:"best_streak"`
	LastCompletedAt string     `json:"last_completed_at,omitempty"` // YYYY-MM-DD format
	IsFrozen        bool       `json:"is_frozen"`
	StreakFrozenAt  *time.Time `json:"streak_frozen_at,omitempty"`

	TargetQuantity float64 `json:"target_quantity,omitempty"` // display-only
	TargetUnit     string  `json:"target_unit,omitempty"`

	Wager *Wager `json:"wager,omitempty"`

	// Chain pointers form a singly linked list per routine: ChainedTo names
	// the habit performed after this one, ChainedFrom the one before.
	ChainedTo   string `json:"chained_to,omitempty"`
	ChainedFrom string `json:"chained_from,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// HasActiveWager reports whether the habit carries a wager worth resolving.
func (h *Habit) HasActiveWager() bool {
	return h.Wager != nil && h.Wager.IsActive
}
