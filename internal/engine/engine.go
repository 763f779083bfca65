package engine

import (
	"time"

	"github.com/julianstephens/habitcore/internal/achievement"
	"github.com/julianstephens/habitcore/internal/analytics"
	"github.com/julianstephens/habitcore/internal/chain"
	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/schedule"
	"github.com/julianstephens/habitcore/internal/streak"
	"github.com/julianstephens/habitcore/internal/wager"
)

// Config carries the conventions the engine computes under. Everything is
// injected explicitly so tests can run with alternate tables and week
// anchors; there is no package-level mutable state.
type Config struct {
	WeekStart      time.Weekday
	Milestones     []models.Milestone
	RateWindowDays int
}

// DefaultConfig returns the shipped conventions: Monday weeks and the
// built-in milestone table.
func DefaultConfig() Config {
	return Config{
		WeekStart:      constants.DefaultWeekStart,
		Milestones:     achievement.DefaultMilestones,
		RateWindowDays: constants.DefaultRateWindowDays,
	}
}

// Engine is the pure computation core. Every method takes an immutable
// snapshot and returns derived values; the engine never reads or writes
// storage, never sends notifications, and never checks permissions. Feeding
// it the same final completion set always yields the same answer regardless
// of insertion order.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	if cfg.Milestones == nil {
		cfg.Milestones = achievement.DefaultMilestones
	}
	if cfg.RateWindowDays <= 0 {
		cfg.RateWindowDays = constants.DefaultRateWindowDays
	}
	return &Engine{cfg: cfg}
}

// RecomputeHabit derives the habit's streak fields from its completion log
// and resolves any active wager against the new streak. The returned habit
// carries the fields the caller re-persists; the input is not mutated.
func (e *Engine) RecomputeHabit(h models.Habit, completions []models.Completion, today time.Time, completedBy string) (models.Habit, streak.Result, error) {
	res, err := streak.Recompute(h, completions, today, e.cfg.WeekStart)
	if err != nil {
		return h, streak.Result{}, err
	}

	h.CurrentStreak = res.CurrentStreak
	h.BestStreak = res.BestStreak
	h.LastCompletedAt = res.LastCompletedAt

	if h.HasActiveWager() {
		resolved := wager.Resolve(*h.Wager, res.CurrentStreak, completedBy)
		h.Wager = &resolved
	}
	return h, res, nil
}

// IsDueToday reports whether the habit requires action today.
func (e *Engine) IsDueToday(h models.Habit, today time.Time) (bool, error) {
	return schedule.IsDue(h.Schedule, today, h.LastCompletedAt)
}

// Routines resolves chain pointers into ordered routines plus any
// data-integrity warnings found along the way.
func (e *Engine) Routines(habits []models.Habit) ([]chain.Routine, []chain.Warning) {
	return chain.Resolve(habits)
}

// Achievements evaluates the configured milestone table.
func (e *Engine) Achievements(habits []models.Habit, completions []models.Completion) []models.ComputedAchievement {
	return achievement.Compute(habits, completions, e.cfg.Milestones)
}

// NextAchievements returns the next locked rung on each milestone ladder.
func (e *Engine) NextAchievements(habits []models.Habit, completions []models.Completion) []models.ComputedAchievement {
	return achievement.Next(e.Achievements(habits, completions))
}

// AchievementStats summarizes unlock progress across the table.
func (e *Engine) AchievementStats(habits []models.Habit, completions []models.Completion) models.AchievementStats {
	return achievement.Stats(e.Achievements(habits, completions))
}

// WeeklyConsistency builds the 7-day histogram ending today.
func (e *Engine) WeeklyConsistency(habits []models.Habit, completions []models.Completion, today time.Time) []analytics.DayStats {
	return analytics.WeeklyConsistency(habits, completions, today)
}

// BestDayOfWeek returns the all-time strongest weekday, or "None".
func (e *Engine) BestDayOfWeek(completions []models.Completion) string {
	return analytics.BestDayOfWeek(completions)
}

// CompletionRate is the habit's raw completion frequency over the
// configured trailing window, as a rounded percentage.
func (e *Engine) CompletionRate(h models.Habit, completions []models.Completion, today time.Time) int {
	return analytics.CompletionRate(h, completions, today, e.cfg.RateWindowDays)
}

// Leaderboard ranks members by completions since the start of the current
// week.
func (e *Engine) Leaderboard(members []models.Member, completions []models.Completion, today time.Time) []analytics.MemberContribution {
	return analytics.TeamContribution(members, completions, today, e.cfg.WeekStart)
}
