package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultWeekStart is the weekday a rolling week begins on. Weekly
	// habits and the team leaderboard both measure against this anchor.
	DefaultWeekStart = time.Monday

	// DefaultRateWindowDays is the lookback window for completion-rate stats.
	DefaultRateWindowDays = 30
)
