package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitcore/internal/models"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Freeze   HabitFreezeCmd   `cmd:"" help:"Freeze a habit to pause streak decay."`
	Unfreeze HabitUnfreezeCmd `cmd:"" help:"Unfreeze a habit."`
	Chain    HabitChainCmd    `cmd:"" help:"Chain one habit after another."`
	Unchain  HabitUnchainCmd  `cmd:"" help:"Remove a habit's chain links."`
}

type HabitAddCmd struct {
	Name     string   `arg:"" help:"Habit name."`
	Schedule string   `short:"s" help:"Schedule type (daily|specific_days|interval|weekly)." default:"daily"`
	Days     string   `short:"d" help:"Comma-separated weekdays for specific_days."`
	Interval int      `short:"i" help:"Interval in days for interval schedules." default:"1"`
	Times    int      `short:"t" help:"Target count per week for weekly schedules." default:"1"`
	Assignee []string `help:"Member ids responsible for the habit."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	schedule := models.Schedule{Type: models.ScheduleType(c.Schedule)}
	switch schedule.Type {
	case models.ScheduleDaily:
	case models.ScheduleSpecificDays:
		days, err := ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		schedule.DaysOfWeek = days
	case models.ScheduleInterval:
		if c.Interval < 1 {
			return fmt.Errorf("interval must be at least 1 day")
		}
		schedule.IntervalDays = c.Interval
	case models.ScheduleWeekly:
		if c.Times < 1 {
			return fmt.Errorf("weekly target must be at least 1")
		}
		schedule.TimesPerWeek = c.Times
	default:
		return fmt.Errorf("unknown schedule type %q", c.Schedule)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Schedule:  schedule,
		Assignees: c.Assignee,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, FormatSchedule(schedule))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
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

	for _, h := range habits {
		status := ""
		if h.IsFrozen {
			status = " [FROZEN]"
		}
		fmt.Printf("%s (%s)%s\n", h.Name, FormatSchedule(h.Schedule), status)
	}

	return nil
}

type HabitFreezeCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitFreezeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return err
	}
	if habit.IsFrozen {
		fmt.Printf("Habit %q is already frozen\n", c.Name)
		return nil
	}

	now := time.Now()
	habit.IsFrozen = true
	habit.StreakFrozenAt = &now

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Froze habit %q; its streak will not decay while frozen\n", c.Name)
	return nil
}

type HabitUnfreezeCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnfreezeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return err
	}
	if !habit.IsFrozen {
		fmt.Printf("Habit %q is not frozen\n", c.Name)
		return nil
	}

	habit.IsFrozen = false
	// StreakFrozenAt stays behind: recomputes keep exempting the days that
	// passed while the habit was frozen. The next freeze overwrites it.

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Unfroze habit %q; due-date checks resume going forward\n", c.Name)
	return nil
}

type HabitChainCmd struct {
	First  string `arg:"" help:"Habit performed first."`
	Second string `arg:"" help:"Habit performed after it."`
}

func (c *HabitChainCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	first, err := ctx.Store.GetHabitByName(c.First)
	if err != nil {
		return err
	}
	second, err := ctx.Store.GetHabitByName(c.Second)
	if err != nil {
		return err
	}
	if first.ID == second.ID {
		return fmt.Errorf("cannot chain a habit to itself")
	}
	if first.ChainedTo != "" {
		return fmt.Errorf("habit %q already chains to another habit", c.First)
	}
	if second.ChainedFrom != "" {
		return fmt.Errorf("habit %q already follows another habit", c.Second)
	}

	// Both pointers are written together to keep the chain symmetric.
	first.ChainedTo = second.ID
	second.ChainedFrom = first.ID

	if err := ctx.Store.UpdateHabit(first); err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(second); err != nil {
		return err
	}

	fmt.Printf("Chained %q -> %q\n", c.First, c.Second)
	return nil
}

type HabitUnchainCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnchainCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return err
	}

	if habit.ChainedTo != "" {
		if next, err := ctx.Store.GetHabit(habit.ChainedTo); err == nil {
			next.ChainedFrom = ""
			if err := ctx.Store.UpdateHabit(next); err != nil {
				return err
			}
		}
		habit.ChainedTo = ""
	}
	if habit.ChainedFrom != "" {
		if prev, err := ctx.Store.GetHabit(habit.ChainedFrom); err == nil {
			prev.ChainedTo = ""
			if err := ctx.Store.UpdateHabit(prev); err != nil {
				return err
			}
		}
		habit.ChainedFrom = ""
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Removed chain links for %q\n", c.Name)
	return nil
}
