package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/habitcore/internal/achievement"
	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
	"github.com/julianstephens/habitcore/internal/streak"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

func dailyHabit(id string) models.Habit {
	return models.Habit{
		ID:       id,
		Name:     id,
		Schedule: models.Schedule{Type: models.ScheduleDaily},
	}
}

func TestNew_FillsConfigDefaults(t *testing.T) {
	e := New(Config{WeekStart: time.Sunday})
	if e.cfg.Milestones == nil {
		t.Error("Expected default milestone table")
	}
	if e.cfg.RateWindowDays != constants.DefaultRateWindowDays {
		t.Errorf("Expected default rate window, got %d", e.cfg.RateWindowDays)
	}
}

func TestRecomputeHabit_UpdatesDerivedFields(t *testing.T) {
	e := New(DefaultConfig())
	h := dailyHabit("h1")
	completions := []models.Completion{
		{ID: "a", HabitID: "h1", Day: "2024-01-04"},
		{ID: "b", HabitID: "h1", Day: "2024-01-05"},
	}

	got, res, err := e.RecomputeHabit(h, completions, day(t, "2024-01-05"), "m1")
	if err != nil {
		t.Fatalf("RecomputeHabit failed: %v", err)
	}

	if got.CurrentStreak != 2 || got.BestStreak != 2 {
		t.Errorf("Expected streaks 2/2, got %d/%d", got.CurrentStreak, got.BestStreak)
	}
	if got.LastCompletedAt != "2024-01-05" {
		t.Errorf("Expected last completed 2024-01-05, got %s", got.LastCompletedAt)
	}
	if res.State != streak.StateAlive {
		t.Errorf("Expected state alive, got %s", res.State)
	}
}

func TestRecomputeHabit_ResolvesWager(t *testing.T) {
	e := New(DefaultConfig())
	h := dailyHabit("h1")
	h.Wager = &models.Wager{
		IsActive:     true,
		TargetStreak: 2,
		Participants: []string{"m1", "m2"},
		Status:       models.WagerPending,
	}
	completions := []models.Completion{
		{ID: "a", HabitID: "h1", Day: "2024-01-04"},
		{ID: "b", HabitID: "h1", Day: "2024-01-05"},
	}

	got, _, err := e.RecomputeHabit(h, completions, day(t, "2024-01-05"), "m1")
	if err != nil {
		t.Fatalf("RecomputeHabit failed: %v", err)
	}

	if got.Wager.Status != models.WagerWon {
		t.Errorf("Expected wager won, got %s", got.Wager.Status)
	}
	if got.Wager.WinnerID != "m1" {
		t.Errorf("Expected winner m1, got %q", got.Wager.WinnerID)
	}
	// The input habit's wager must not be mutated.
	if h.Wager.Status != models.WagerPending {
		t.Errorf("Expected input wager untouched, got %s", h.Wager.Status)
	}
}

func TestRecomputeHabit_Deterministic(t *testing.T) {
	e := New(DefaultConfig())
	h := dailyHabit("h1")
	completions := []models.Completion{
		{ID: "a", HabitID: "h1", Day: "2024-01-03"},
		{ID: "b", HabitID: "h1", Day: "2024-01-04"},
		{ID: "c", HabitID: "h1", Day: "2024-01-05"},
	}
	reversed := []models.Completion{completions[2], completions[1], completions[0]}

	first, res1, err := e.RecomputeHabit(h, completions, day(t, "2024-01-05"), "")
	if err != nil {
		t.Fatalf("RecomputeHabit failed: %v", err)
	}
	second, res2, err := e.RecomputeHabit(h, reversed, day(t, "2024-01-05"), "")
	if err != nil {
		t.Fatalf("RecomputeHabit failed: %v", err)
	}

	if res1 != res2 {
		t.Errorf("Insertion order changed result: %+v vs %+v", res1, res2)
	}
	if first.CurrentStreak != second.CurrentStreak {
		t.Errorf("Insertion order changed streak: %d vs %d", first.CurrentStreak, second.CurrentStreak)
	}
}

func TestIsDueToday(t *testing.T) {
	e := New(DefaultConfig())

	due, err := e.IsDueToday(dailyHabit("h1"), day(t, "2024-01-05"))
	if err != nil {
		t.Fatalf("IsDueToday failed: %v", err)
	}
	if !due {
		t.Error("Expected daily habit due")
	}

	h := models.Habit{
		ID:              "h2",
		Schedule:        models.Schedule{Type: models.ScheduleInterval, IntervalDays: 3},
		LastCompletedAt: "2024-01-04",
	}
	due, err = e.IsDueToday(h, day(t, "2024-01-05"))
	if err != nil {
		t.Fatalf("IsDueToday failed: %v", err)
	}
	if due {
		t.Error("Expected interval habit not due the day after completing")
	}
}

func TestRoutinesAndAchievementsDelegate(t *testing.T) {
	e := New(DefaultConfig())
	habits := []models.Habit{
		{ID: "a", ChainedTo: "b"},
		{ID: "b", ChainedFrom: "a"},
	}

	routines, warnings := e.Routines(habits)
	if len(warnings) != 0 {
		t.Fatalf("Expected no warnings, got %v", warnings)
	}
	if len(routines) != 1 || len(routines[0].Habits) != 2 {
		t.Fatalf("Expected one routine of two habits, got %v", routines)
	}

	computed := e.Achievements(habits, nil)
	if len(computed) != len(achievement.DefaultMilestones) {
		t.Errorf("Expected %d achievements, got %d", len(achievement.DefaultMilestones), len(computed))
	}
}

func TestLeaderboardUsesConfiguredWeekStart(t *testing.T) {
	// Sunday-start weeks pull 2024-01-07 into the current week of
	// Tuesday 2024-01-09; Monday-start weeks do not.
	members := []models.Member{{ID: "m1", Name: "Ana"}}
	completions := []models.Completion{
		{ID: "a", HabitID: "h1", MemberID: "m1", Day: "2024-01-07"},
	}

	sunday := New(Config{WeekStart: time.Sunday})
	rows := sunday.Leaderboard(members, completions, day(t, "2024-01-09"))
	if rows[0].ThisWeek != 1 {
		t.Errorf("Expected Sunday completion inside Sunday-start week, got %d", rows[0].ThisWeek)
	}

	monday := New(Config{WeekStart: time.Monday})
	rows = monday.Leaderboard(members, completions, day(t, "2024-01-09"))
	if rows[0].ThisWeek != 0 {
		t.Errorf("Expected Sunday completion outside Monday-start week, got %d", rows[0].ThisWeek)
	}
}
