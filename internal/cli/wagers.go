package cli

import (
	"fmt"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/models"
)

type WagersCmd struct {
	List  WagerListCmd  `cmd:"" default:"withargs" help:"List wager status."`
	Start WagerStartCmd `cmd:"" help:"Attach a wager to a habit."`
	Lose  WagerLoseCmd  `cmd:"" help:"Declare an active wager lost."`
}

type WagerListCmd struct{}

func (c *WagerListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	found := false
	today := ctx.Today()
	for _, h := range habits {
		if h.Wager == nil {
			continue
		}
		found = true

		updated, res, err := ctx.Engine.RecomputeHabit(h, completions, today, "")
		if err != nil {
			return err
		}
		w := updated.Wager

		switch w.Status {
		case models.WagerWon:
			winner := ""
			if w.WinnerID != "" {
				winner = fmt.Sprintf(" (winner: %s)", w.WinnerID)
			}
			fmt.Printf("%-24s WON%s\n", h.Name, winner)
		case models.WagerLost:
			fmt.Printf("%-24s LOST\n", h.Name)
		default:
			fmt.Printf("%-24s pending: %d/%d\n", h.Name, res.CurrentStreak, w.TargetStreak)
		}
	}

	if !found {
		fmt.Println("No wagers.")
	}
	return nil
}

type WagerStartCmd struct {
	Habit        string   `arg:"" help:"Habit name."`
	Target       int      `short:"t" required:"" help:"Streak length that wins the wager."`
	Description  string   `short:"d" help:"What is at stake."`
	Participants []string `short:"p" help:"Member ids taking part."`
}

func (c *WagerStartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return err
	}
	if habit.HasActiveWager() {
		return fmt.Errorf("habit %q already has an active wager", c.Habit)
	}
	if c.Target < 1 {
		return fmt.Errorf("wager target must be at least 1")
	}

	habit.Wager = &models.Wager{
		IsActive:     true,
		Description:  c.Description,
		TargetStreak: c.Target,
		StartDate:    ctx.Today().Format(constants.DateFormat),
		Participants: c.Participants,
		Status:       models.WagerPending,
	}
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Wager on %q: reach a %d-day streak\n", c.Habit, c.Target)
	return nil
}

type WagerLoseCmd struct {
	Habit string `arg:"" help:"Habit name."`
}

// Losing is an explicit action, never inferred from a broken streak: a
// streak short of the target is still in play while the clock runs.
func (c *WagerLoseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return err
	}
	if !habit.HasActiveWager() {
		return fmt.Errorf("habit %q has no active wager", c.Habit)
	}
	if habit.Wager.Status != models.WagerPending {
		return fmt.Errorf("wager on %q is already %s", c.Habit, habit.Wager.Status)
	}

	habit.Wager.Status = models.WagerLost
	habit.Wager.IsActive = false
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Wager on %q marked lost\n", c.Habit)
	return nil
}
