package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitcore/internal/logger"
)

type RoutinesCmd struct{}

func (c *RoutinesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	routines, warnings := ctx.Engine.Routines(habits)
	for _, w := range warnings {
		logger.Warn("Malformed chain", "habit", w.HabitID, "detail", w.Message)
		fmt.Printf("Warning: %s\n", w.Message)
	}

	if len(routines) == 0 {
		fmt.Println("No routines found.")
		return nil
	}

	for _, r := range routines {
		var names []string
		for _, h := range r.Habits {
			names = append(names, h.Name)
		}
		fmt.Println(strings.Join(names, " -> "))
	}

	return nil
}
