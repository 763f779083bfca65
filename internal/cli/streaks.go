package cli

import "fmt"

type StreaksCmd struct{}

func (c *StreaksCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	today := ctx.Today()
	for _, h := range habits {
		_, res, err := ctx.Engine.RecomputeHabit(h, completions, today, "")
		if err != nil {
			return err
		}

		frozen := ""
		if h.IsFrozen {
			frozen = " [frozen]"
		}
		fmt.Printf("%-24s current %-4d best %-4d %s%s\n", h.Name, res.CurrentStreak, res.BestStreak, res.State, frozen)
	}

	return nil
}
