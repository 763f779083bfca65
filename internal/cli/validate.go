package cli

import (
	"fmt"

	"github.com/julianstephens/habitcore/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	result := validation.New().ValidateHabits(habits)
	fmt.Print(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts found", len(result.Conflicts))
	}
	return nil
}
