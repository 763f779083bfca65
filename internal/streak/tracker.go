package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/schedule"
)

// State describes where a streak stands as of the recompute.
type State string

const (
	// StateAlive means every evaluated due date was satisfied.
	StateAlive State = "alive"
	// StateAtRisk means the streak holds but today (or the current week)
	// is due and not yet completed.
	StateAtRisk State = "at_risk"
	// StateBroken means the most recent non-frozen due date was missed.
	StateBroken State = "broken"
)

// Result carries the derived streak fields the caller persists back onto
// the habit record.
type Result struct {
	CurrentStreak   int
	BestStreak      int
	LastCompletedAt string // YYYY-MM-DD, empty if the log is empty
	State           State
}

// Recompute derives streak state for one habit from its full completion
// log. It always recomputes from scratch: incremental updates are not safe
// when the previous day was not due, and a full recompute is what makes the
// engine idempotent and insertion-order independent.
func Recompute(habit models.Habit, completions []models.Completion, today time.Time, weekStart time.Weekday) (Result, error) {
	days := DistinctDays(habit.ID, completions)

	res := Result{LastCompletedAt: latestDay(days)}

	var err error
	switch habit.Schedule.Type {
	case models.ScheduleDaily, models.ScheduleSpecificDays, models.ScheduleInterval:
		err = recomputeDaily(&res, habit, days, today)
	case models.ScheduleWeekly:
		recomputeWeekly(&res, habit, days, today, weekStart)
	default:
		// Probe IsDue so the unknown-type error carries the offending value.
		_, err = schedule.IsDue(habit.Schedule, today, "")
	}
	if err != nil {
		return Result{}, err
	}

	// Best streak is monotonic for the habit's lifetime.
	res.BestStreak = habit.BestStreak
	if res.CurrentStreak > res.BestStreak {
		res.BestStreak = res.CurrentStreak
	}
	return res, nil
}

// DistinctDays returns the habit's completion days, deduplicated by day and
// sorted ascending. Duplicate submissions for the same day are a single
// logical completion and must never double-count a streak day.
func DistinctDays(habitID string, completions []models.Completion) []string {
	seen := make(map[string]bool)
	var days []string
	for _, c := range completions {
		if c.HabitID != habitID || seen[c.Day] {
			continue
		}
		seen[c.Day] = true
		days = append(days, c.Day)
	}
	sort.Strings(days)
	return days
}

func latestDay(sortedDays []string) string {
	if len(sortedDays) == 0 {
		return ""
	}
	return sortedDays[len(sortedDays)-1]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// frozenSpan is the date range exempt from due checks. A frozen habit
// never breaks its streak, but exempt days do not extend it either.
//
// While the habit is frozen the span is open ended. After an unfreeze the
// span stays anchored at StreakFrozenAt and runs until the first completion
// that follows it: due-date checks resume going forward, and a recompute
// never re-applies them to days that passed while the habit was frozen.
type frozenSpan struct {
	from  time.Time
	until time.Time // zero means open ended
	valid bool
}

// spanFor derives the exempt range from the habit's freeze marker and its
// sorted completion days. A freeze with no recorded start is treated as
// beginning today.
func spanFor(habit models.Habit, days []string, today time.Time) frozenSpan {
	if habit.StreakFrozenAt == nil {
		if !habit.IsFrozen {
			return frozenSpan{}
		}
		return frozenSpan{from: midnight(today), valid: true}
	}

	span := frozenSpan{from: midnight(*habit.StreakFrozenAt), valid: true}
	if habit.IsFrozen {
		return span
	}
	for _, dayStr := range days {
		d, err := schedule.ParseDay(dayStr)
		if err != nil {
			continue
		}
		if d.After(span.from) {
			span.until = d
			break
		}
	}
	return span
}

func (s frozenSpan) covers(day time.Time) bool {
	if !s.valid || day.Before(s.from) {
		return false
	}
	return s.until.IsZero() || day.Before(s.until)
}

// daysBetween counts exempt days strictly between from and to. Interval
// gaps subtract these so a paused clock does not count against the habit.
func (s frozenSpan) daysBetween(from, to time.Time) int {
	if !s.valid {
		return 0
	}
	lo := from.AddDate(0, 0, 1)
	if lo.Before(s.from) {
		lo = s.from
	}
	hi := to
	if !s.until.IsZero() && s.until.Before(hi) {
		hi = s.until
	}
	if !hi.After(lo) {
		return 0
	}
	return schedule.WholeDaysBetween(lo, hi)
}

func recomputeDaily(res *Result, habit models.Habit, days []string, today time.Time) error {
	if habit.Schedule.Type == models.ScheduleInterval {
		return recomputeInterval(res, habit, days, today)
	}

	done := make(map[string]bool, len(days))
	for _, d := range days {
		done[d] = true
	}

	span := spanFor(habit, days, today)
	day := midnight(today)
	streak := 0
	atRisk := false
	broke := false

	if len(days) > 0 {
		earliest, err := schedule.ParseDay(days[0])
		if err != nil {
			return err
		}

		// Walk backward from today. Dates that are not due are skipped:
		// they neither break nor extend the streak. The walk is bounded by
		// the earliest completion; below it every due date is a miss.
		for !day.Before(earliest) {
			if span.covers(day) {
				day = day.AddDate(0, 0, -1)
				continue
			}
			due, err := schedule.IsDue(habit.Schedule, day, "")
			if err != nil {
				return err
			}
			if !due {
				day = day.AddDate(0, 0, -1)
				continue
			}
			if done[day.Format(constants.DateFormat)] {
				streak++
				day = day.AddDate(0, 0, -1)
				continue
			}
			if day.Equal(midnight(today)) {
				// Today is not over yet: a pending due date puts the
				// streak at risk without breaking it.
				atRisk = true
				day = day.AddDate(0, 0, -1)
				continue
			}
			broke = true
			break
		}
	} else {
		due, err := schedule.IsDue(habit.Schedule, midnight(today), "")
		if err != nil {
			return err
		}
		atRisk = due && !span.covers(midnight(today))
	}

	res.CurrentStreak = streak
	res.State = stateFor(streak, atRisk, broke)
	return nil
}

// recomputeInterval walks the log forward because interval due-ness is
// measured from the previous completion, not the calendar. A completion
// exactly IntervalDays after the previous one extends the streak; an early
// completion only resets the clock; a gap past the interval means a due day
// went unsatisfied and the run restarts.
func recomputeInterval(res *Result, habit models.Habit, days []string, today time.Time) error {
	interval := habit.Schedule.IntervalDays
	span := spanFor(habit, days, today)
	streak := 0
	var prev time.Time

	for _, dayStr := range days {
		d, err := schedule.ParseDay(dayStr)
		if err != nil {
			return err
		}
		if span.covers(d) {
			// Frozen completions reset the interval clock without
			// extending the streak.
			prev = d
			continue
		}
		if prev.IsZero() {
			// First-ever completion: the habit is due from creation.
			streak = 1
			prev = d
			continue
		}
		// Exempt days pause the clock, so they never count into the gap.
		gap := schedule.WholeDaysBetween(prev, d) - span.daysBetween(prev, d)
		switch {
		case gap < interval:
			// Completed before the due date: not a due day, so it neither
			// extends nor breaks. The clock still resets.
			prev = d
		case gap == interval:
			streak++
			prev = d
		default:
			streak = 1
			prev = d
		}
	}

	atRisk := false
	broke := false
	if prev.IsZero() {
		atRisk = !span.covers(midnight(today))
	} else if !span.covers(midnight(today)) {
		sinceLast := schedule.WholeDaysBetween(prev, midnight(today)) - span.daysBetween(prev, midnight(today))
		if sinceLast > interval {
			// The due day came and went uncompleted.
			streak = 0
			broke = true
		} else if sinceLast == interval {
			atRisk = true
		}
	}

	res.CurrentStreak = streak
	res.State = stateFor(streak, atRisk, broke)
	return nil
}

// recomputeWeekly measures the streak in consecutive qualifying weeks. The
// current week in progress never breaks the streak; it only counts once it
// reaches the weekly target.
func recomputeWeekly(res *Result, habit models.Habit, days []string, today time.Time, weekStart time.Weekday) {
	counts := weeklyCounts(days, weekStart)
	span := spanFor(habit, days, today)
	target := habit.Schedule.TimesPerWeek

	streak := 0
	atRisk := false
	broke := false

	week := schedule.WeekStartOf(today, weekStart)
	if target > 0 && counts[week] >= target {
		streak++
	} else if !span.covers(midnight(today)) {
		atRisk = true
	}

	// Prior weeks only matter once the log reaches back past the current
	// week; a habit started this week has nothing to break.
	hasPriorHistory := false
	if len(days) > 0 {
		if earliest, err := schedule.ParseDay(days[0]); err == nil {
			hasPriorHistory = earliest.Before(schedule.WeekStartOf(today, weekStart))
		}
	}

	if target > 0 && hasPriorHistory {
		for {
			week = week.AddDate(0, 0, -7)
			// A week whose end falls inside the frozen span is exempt.
			if span.covers(week.AddDate(0, 0, 6)) {
				continue
			}
			if counts[week] >= target {
				streak++
				continue
			}
			broke = streak == 0
			break
		}
	}

	res.CurrentStreak = streak
	res.State = stateFor(streak, atRisk, broke)
}

func weeklyCounts(days []string, weekStart time.Weekday) map[time.Time]int {
	counts := make(map[time.Time]int)
	for _, dayStr := range days {
		d, err := schedule.ParseDay(dayStr)
		if err != nil {
			continue
		}
		counts[schedule.WeekStartOf(d, weekStart)]++
	}
	return counts
}

func stateFor(streak int, atRisk, broke bool) State {
	switch {
	case streak == 0 && broke:
		// A pending due date today does not resurrect an already broken
		// streak.
		return StateBroken
	case atRisk:
		return StateAtRisk
	case streak > 0:
		return StateAlive
	default:
		return StateAlive
	}
}
