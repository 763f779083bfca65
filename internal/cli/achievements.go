package cli

import "fmt"

type AchievementsCmd struct {
	Next bool `short:"n" help:"Show only the next locked milestone per ladder."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
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

	if c.Next {
		next := ctx.Engine.NextAchievements(habits, completions)
		if len(next) == 0 {
			fmt.Println("All milestones unlocked.")
			return nil
		}
		fmt.Println("Next milestones:")
		for _, ca := range next {
			fmt.Printf("  %s: %d/%d\n", ca.Milestone.Title, ca.Progress, ca.Milestone.Threshold)
		}
		return nil
	}

	computed := ctx.Engine.Achievements(habits, completions)
	for _, ca := range computed {
		status := "[ ]"
		if ca.Unlocked {
			status = "[x]"
		}
		fmt.Printf("%s %-20s %d/%d (tier %d)\n", status, ca.Milestone.Title, ca.Progress, ca.Milestone.Threshold, ca.Milestone.Tier)
	}

	stats := ctx.Engine.AchievementStats(habits, completions)
	fmt.Printf("\nUnlocked: %d/%d (%d%%)\n", stats.Unlocked, stats.Total, stats.Percentage)
	if stats.RecentUnlock != nil {
		fmt.Printf("Latest: %s\n", stats.RecentUnlock.Title)
	}

	return nil
}
