package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
)

type MarkCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Day    string `help:"Day in YYYY-MM-DD format (default: today)." default:""`
	Member string `short:"m" help:"Acting member id."`
}

// Run toggles a completion for the habit on the given day, then recomputes
// the derived streak fields from the full log and persists them. Removal is
// only permitted for the current day.
func (c *MarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	today := ctx.Today()
	day := c.Day
	if day == "" {
		day = today.Format(constants.DateFormat)
	} else {
		if _, err := time.Parse(constants.DateFormat, day); err != nil {
			return fmt.Errorf("invalid day format: %s (expected YYYY-MM-DD)", day)
		}
	}

	existing, err := ctx.Store.GetCompletion(habit.ID, day)
	if err == nil {
		// Completion exists: undo it. Undoing past days is not allowed.
		if day != today.Format(constants.DateFormat) {
			return fmt.Errorf("only today's completion can be unmarked")
		}
		if err := ctx.Store.DeleteCompletion(existing.ID); err != nil {
			return err
		}
		if err := c.recompute(ctx, habit, today); err != nil {
			return err
		}
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
		return nil
	}

	completion := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		MemberID:  c.Member,
		Day:       day,
		Source:    models.SourceManual,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddCompletion(completion); err != nil {
		return err
	}
	if err := c.recompute(ctx, habit, today); err != nil {
		return err
	}

	fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	return nil
}

func (c *MarkCmd) recompute(ctx *Context, habit models.Habit, today time.Time) error {
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	updated, res, err := ctx.Engine.RecomputeHabit(habit, completions, today, c.Member)
	if err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Streak: %d (best %d, %s)\n", res.CurrentStreak, res.BestStreak, res.State)
	if updated.HasActiveWager() && updated.Wager.Status == models.WagerWon && habit.Wager.Status != models.WagerWon {
		fmt.Printf("Wager won! Reached a %d-day streak\n", updated.Wager.TargetStreak)
	}
	return nil
}
