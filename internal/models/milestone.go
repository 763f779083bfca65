package models

type MilestoneType string

const (
	MilestoneStreak           MilestoneType = "streak"
	MilestoneTotalCompletions MilestoneType = "total_completions"
	MilestoneHabitCount       MilestoneType = "habit_count"
)

// Milestone is one row of the static achievement table. The table is
// versioned data, never mutated at runtime.
type Milestone struct {
	ID        string        `json:"id"`
	Type      MilestoneType `json:"type"`
	Threshold int           `json:"threshold"`
	Tier      int           `json:"tier"`
	Title     string        `json:"title"`
}

// ComputedAchievement is derived on demand from habits, completions and the
// milestone table. It is never persisted.
type ComputedAchievement struct {
	Milestone Milestone `json:"milestone"`
	Progress  int       `json:"progress"`
	Unlocked  bool      `json:"unlocked"`
}

// AchievementStats summarizes unlock progress across the whole table.
// RecentUnlock is the last unlocked milestone in table order, not the most
// recently unlocked in time.
type AchievementStats struct {
	Total        int        `json:"total"`
	Unlocked     int        `json:"unlocked"`
	Percentage   int        `json:"percentage"`
	RecentUnlock *Milestone `json:"recent_unlock,omitempty"`
}
