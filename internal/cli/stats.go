package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitcore/internal/analytics"
)

type StatsCmd struct {
	Window int `short:"w" help:"Override the completion-rate lookback window in days."`
}

func (c *StatsCmd) Run(ctx *Context) error {
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

	today := ctx.Today()

	fmt.Println("Last 7 days:")
	for _, ds := range ctx.Engine.WeeklyConsistency(habits, completions, today) {
		fmt.Printf("  %s %s %s %d\n", ds.Label, ds.Day, strings.Repeat("#", ds.Count), ds.Count)
	}

	fmt.Printf("\nBest day of week: %s\n", ctx.Engine.BestDayOfWeek(completions))

	if len(habits) > 0 {
		fmt.Println("\nCompletion rate:")
		for _, h := range habits {
			rate := 0
			if c.Window > 0 {
				rate = analytics.CompletionRate(h, completions, today, c.Window)
			} else {
				rate = ctx.Engine.CompletionRate(h, completions, today)
			}
			fmt.Printf("  %-24s %d%%\n", h.Name, rate)
		}
	}

	return nil
}

type LeaderboardCmd struct{}

func (c *LeaderboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.GetAllMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("No members found.")
		return nil
	}

	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard (this week / lifetime):")
	for i, row := range ctx.Engine.Leaderboard(members, completions, ctx.Today()) {
		fmt.Printf("  %d. %-20s %d / %d\n", i+1, row.Member.Name, row.ThisWeek, row.Total)
	}

	return nil
}
