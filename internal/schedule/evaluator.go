package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
)

// ErrUnknownScheduleType means the writer and reader disagree on the schema.
// Callers must treat it as fatal rather than guess a recurrence.
var ErrUnknownScheduleType = errors.New("unknown schedule type")

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t, nil
}

// WholeDaysBetween returns to minus from in whole calendar days.
// Date-based arithmetic with explicit rounding avoids DST issues.
func WholeDaysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// WeekStartOf returns midnight of the most recent start-weekday at or
// before date.
func WeekStartOf(date time.Time, start time.Weekday) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// IsDue reports whether a habit with the given schedule requires action on
// date. lastCompleted is the habit's most recent completion day (empty if
// never completed) and only matters for interval schedules.
//
// Weekly schedules are never due on a per-day basis; their streak
// continuity is evaluated at week granularity via IsOnTrackForWeek.
func IsDue(s models.Schedule, date time.Time, lastCompleted string) (bool, error) {
	switch s.Type {
	case models.ScheduleDaily:
		return true, nil
	case models.ScheduleSpecificDays:
		// An empty day set means never due. The UI should prevent saving
		// this state; here it is a safe default that cannot break a streak.
		for _, wd := range s.DaysOfWeek {
			if date.Weekday() == wd {
				return true, nil
			}
		}
		return false, nil
	case models.ScheduleInterval:
		if lastCompleted == "" {
			return true, nil
		}
		last, err := ParseDay(lastCompleted)
		if err != nil {
			return false, err
		}
		return WholeDaysBetween(last, date) >= s.IntervalDays, nil
	case models.ScheduleWeekly:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownScheduleType, s.Type)
	}
}

// IsOnTrackForWeek reports whether the rolling week containing reference
// holds enough distinct completion days to satisfy a weekly schedule.
func IsOnTrackForWeek(s models.Schedule, completionDays []string, reference time.Time, weekStart time.Weekday) bool {
	if s.TimesPerWeek <= 0 {
		return false
	}
	return CountInWeek(completionDays, reference, weekStart) >= s.TimesPerWeek
}

// CountInWeek counts distinct completion days falling inside the rolling
// week that contains reference.
func CountInWeek(completionDays []string, reference time.Time, weekStart time.Weekday) int {
	start := WeekStartOf(reference, weekStart)
	end := start.AddDate(0, 0, 7)

	seen := make(map[string]bool)
	count := 0
	for _, day := range completionDays {
		if seen[day] {
			continue
		}
		seen[day] = true
		d, err := ParseDay(day)
		if err != nil {
			continue
		}
		if !d.Before(start) && d.Before(end) {
			count++
		}
	}
	return count
}
