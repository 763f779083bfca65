package achievement

import (
	"math"

	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/streak"
)

// Compute evaluates every milestone in the table against the space's
// aggregate metrics. Progress is the raw metric value; there is no partial
// credit or rounding.
func Compute(habits []models.Habit, completions []models.Completion, table []models.Milestone) []models.ComputedAchievement {
	best := bestStreakAcross(habits)
	total := totalCompletions(habits, completions)
	active := activeHabitCount(habits)

	computed := make([]models.ComputedAchievement, 0, len(table))
	for _, m := range table {
		var progress int
		switch m.Type {
		case models.MilestoneStreak:
			progress = best
		case models.MilestoneTotalCompletions:
			progress = total
		case models.MilestoneHabitCount:
			progress = active
		}
		computed = append(computed, models.ComputedAchievement{
			Milestone: m,
			Progress:  progress,
			Unlocked:  progress >= m.Threshold,
		})
	}
	return computed
}

// Next returns, per milestone type, the lowest-threshold milestone not yet
// unlocked: the next rung on each ladder, at most one per type.
func Next(computed []models.ComputedAchievement) []models.ComputedAchievement {
	lowest := make(map[models.MilestoneType]models.ComputedAchievement)
	for _, ca := range computed {
		if ca.Unlocked {
			continue
		}
		cur, ok := lowest[ca.Milestone.Type]
		if !ok || ca.Milestone.Threshold < cur.Milestone.Threshold {
			lowest[ca.Milestone.Type] = ca
		}
	}

	// Emit in ladder order: streak, total completions, habit count.
	var next []models.ComputedAchievement
	for _, t := range []models.MilestoneType{models.MilestoneStreak, models.MilestoneTotalCompletions, models.MilestoneHabitCount} {
		if ca, ok := lowest[t]; ok {
			next = append(next, ca)
		}
	}
	return next
}

// Stats summarizes unlock progress. RecentUnlock is the last unlocked
// milestone in fixed table order, not the chronologically latest unlock;
// consumers depend on that ordering.
func Stats(computed []models.ComputedAchievement) models.AchievementStats {
	stats := models.AchievementStats{Total: len(computed)}
	for i := range computed {
		if computed[i].Unlocked {
			stats.Unlocked++
			m := computed[i].Milestone
			stats.RecentUnlock = &m
		}
	}
	if stats.Total > 0 {
		stats.Percentage = int(math.Round(float64(stats.Unlocked) / float64(stats.Total) * 100))
	}
	return stats
}

func bestStreakAcross(habits []models.Habit) int {
	best := 0
	for i := range habits {
		if habits[i].BestStreak > best {
			best = habits[i].BestStreak
		}
	}
	return best
}

// totalCompletions counts lifetime completions across all habits in the
// space, deduplicated per habit per day.
func totalCompletions(habits []models.Habit, completions []models.Completion) int {
	total := 0
	for i := range habits {
		total += len(streak.DistinctDays(habits[i].ID, completions))
	}
	return total
}

func activeHabitCount(habits []models.Habit) int {
	count := 0
	for i := range habits {
		if !habits[i].IsFrozen {
			count++
		}
	}
	return count
}
