package achievement

import "github.com/julianstephens/habitcore/internal/models"

// MilestoneTableVersion identifies the shipped milestone table. Bump it
// when rows are added so persisted references stay interpretable.
const MilestoneTableVersion = 1

// DefaultMilestones is the static achievement table: three ladders (streak
// length, lifetime completions, active habit count), lowest tier first.
// The table is fixed data. It is never mutated at runtime, and callers that
// need an alternate table inject their own copy.
var DefaultMilestones = []models.Milestone{
	{ID: "streak-7", Type: models.MilestoneStreak, Threshold: 7, Tier: 1, Title: "One Week Strong"},
	{ID: "streak-21", Type: models.MilestoneStreak, Threshold: 21, Tier: 2, Title: "Three Week Habit"},
	{ID: "streak-60", Type: models.MilestoneStreak, Threshold: 60, Tier: 3, Title: "Sixty Day Groove"},
	{ID: "streak-180", Type: models.MilestoneStreak, Threshold: 180, Tier: 4, Title: "Half Year Iron"},
	{ID: "streak-365", Type: models.MilestoneStreak, Threshold: 365, Tier: 5, Title: "Year Unbroken"},
	{ID: "total-10", Type: models.MilestoneTotalCompletions, Threshold: 10, Tier: 1, Title: "Getting Started"},
	{ID: "total-50", Type: models.MilestoneTotalCompletions, Threshold: 50, Tier: 2, Title: "Fifty Done"},
	{ID: "total-250", Type: models.MilestoneTotalCompletions, Threshold: 250, Tier: 3, Title: "Steady Hands"},
	{ID: "total-1000", Type: models.MilestoneTotalCompletions, Threshold: 1000, Tier: 4, Title: "Thousand Club"},
	{ID: "habits-3", Type: models.MilestoneHabitCount, Threshold: 3, Tier: 1, Title: "Juggler"},
	{ID: "habits-5", Type: models.MilestoneHabitCount, Threshold: 5, Tier: 2, Title: "Full Plate"},
	{ID: "habits-10", Type: models.MilestoneHabitCount, Threshold: 10, Tier: 3, Title: "Architect"},
}
