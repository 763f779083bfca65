package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/schedule"
)

// DayStats is one bucket of the weekly consistency histogram.
type DayStats struct {
	Day   string `json:"day"` // YYYY-MM-DD format
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MemberContribution is one leaderboard row.
type MemberContribution struct {
	Member   models.Member `json:"member"`
	Total    int           `json:"total"`
	ThisWeek int           `json:"this_week"`
}

// WeeklyConsistency counts completions of non-frozen habits for each of the
// last 7 calendar days, oldest first, inclusive of today. The habit index
// is built once so large spaces don't pay a linear scan per completion.
func WeeklyConsistency(habits []models.Habit, completions []models.Completion, today time.Time) []DayStats {
	byID := make(map[string]*models.Habit, len(habits))
	for i := range habits {
		byID[habits[i].ID] = &habits[i]
	}

	counts := make(map[string]int)
	for _, c := range completions {
		h, ok := byID[c.HabitID]
		if !ok || h.IsFrozen {
			continue
		}
		counts[c.Day]++
	}

	stats := make([]DayStats, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		day := d.Format(constants.DateFormat)
		stats = append(stats, DayStats{
			Day:   day,
			Label: d.Weekday().String()[:3],
			Count: counts[day],
		})
	}
	return stats
}

// BestDayOfWeek returns the weekday label with the most completions across
// the entire log. Ties resolve to the lowest weekday index (Sunday first).
// An empty log returns "None".
func BestDayOfWeek(completions []models.Completion) string {
	var counts [7]int
	total := 0
	for _, c := range completions {
		d, err := schedule.ParseDay(c.Day)
		if err != nil {
			continue
		}
		counts[int(d.Weekday())]++
		total++
	}
	if total == 0 {
		return "None"
	}

	best := 0
	for wd := 1; wd < 7; wd++ {
		if counts[wd] > counts[best] {
			best = wd
		}
	}
	return time.Weekday(best).String()
}

// CompletionRate returns the habit's completion frequency over the trailing
// window as a rounded percentage. It is a raw count over window days,
// deliberately not weighted by how many of those days the habit was due.
func CompletionRate(habit models.Habit, completions []models.Completion, today time.Time, windowDays int) int {
	if windowDays <= 0 {
		windowDays = constants.DefaultRateWindowDays
	}
	start := today.AddDate(0, 0, -(windowDays - 1))

	seen := make(map[string]bool)
	count := 0
	for _, c := range completions {
		if c.HabitID != habit.ID || seen[c.Day] {
			continue
		}
		seen[c.Day] = true
		d, err := schedule.ParseDay(c.Day)
		if err != nil {
			continue
		}
		if !d.Before(midnight(start)) && !d.After(midnight(today)) {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(windowDays) * 100))
}

// TeamContribution builds the per-member leaderboard: lifetime completions
// and completions since the start of the current week, sorted descending by
// the weekly count. Ties keep input member order.
func TeamContribution(members []models.Member, completions []models.Completion, today time.Time, weekStart time.Weekday) []MemberContribution {
	weekAnchor := schedule.WeekStartOf(today, weekStart)

	totals := make(map[string]int)
	weekly := make(map[string]int)
	for _, c := range completions {
		totals[c.MemberID]++
		d, err := schedule.ParseDay(c.Day)
		if err != nil {
			continue
		}
		if !d.Before(weekAnchor) {
			weekly[c.MemberID]++
		}
	}

	rows := make([]MemberContribution, 0, len(members))
	for _, m := range members {
		rows = append(rows, MemberContribution{
			Member:   m,
			Total:    totals[m.ID],
			ThisWeek: weekly[m.ID],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ThisWeek > rows[j].ThisWeek
	})
	return rows
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
