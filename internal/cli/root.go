package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitcore/internal/engine"
	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// Today returns the current calendar date at midnight local time. Every
// command resolves "today" once so a run straddling midnight stays
// consistent.
func (c *Context) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })
	return weekdays, nil
}

// FormatSchedule formats a recurrence rule into a human-readable string
func FormatSchedule(s models.Schedule) string {
	switch s.Type {
	case models.ScheduleDaily:
		return "daily"
	case models.ScheduleSpecificDays:
		if len(s.DaysOfWeek) > 0 {
			var days []string
			for _, wd := range s.DaysOfWeek {
				days = append(days, wd.String()[:3])
			}
			return fmt.Sprintf("on %s", strings.Join(days, ","))
		}
		return "never (no weekdays set)"
	case models.ScheduleInterval:
		return fmt.Sprintf("every %d days", s.IntervalDays)
	case models.ScheduleWeekly:
		return fmt.Sprintf("%dx per week", s.TimesPerWeek)
	default:
		return "unknown"
	}
}
