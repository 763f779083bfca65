package validation

import (
	"fmt"

	"github.com/julianstephens/habitcore/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictUnknownScheduleType ConflictType = "unknown_schedule_type"
	ConflictEmptyDaySet         ConflictType = "empty_day_set"
	ConflictNonPositiveInterval ConflictType = "non_positive_interval"
	ConflictNonPositiveTarget   ConflictType = "non_positive_target"
	ConflictChainAsymmetry      ConflictType = "chain_asymmetry"
	ConflictDuplicateChainLink  ConflictType = "duplicate_chain_link"
	ConflictWagerTarget         ConflictType = "wager_target"
)

// Conflict represents a detected integrity problem in a habit snapshot.
type Conflict struct {
	Type        ConflictType
	Description string
	HabitIDs    []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks habit snapshots for integrity problems before they reach
// the engine. None of these are fatal to the engine, which degrades to
// safe defaults for everything except an unknown schedule type, but
// surfacing them early keeps the editing layer honest.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks schedules, wagers and chain pointers.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byID := make(map[string]*models.Habit, len(habits))
	for i := range habits {
		byID[habits[i].ID] = &habits[i]
	}

	chainTargets := make(map[string][]string)

	for i := range habits {
		h := &habits[i]

		switch h.Schedule.Type {
		case models.ScheduleDaily:
		case models.ScheduleSpecificDays:
			if len(h.Schedule.DaysOfWeek) == 0 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictEmptyDaySet,
					Description: fmt.Sprintf("habit %q has no scheduled weekdays and will never be due", h.Name),
					HabitIDs:    []string{h.ID},
				})
			}
		case models.ScheduleInterval:
			if h.Schedule.IntervalDays < 1 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictNonPositiveInterval,
					Description: fmt.Sprintf("habit %q has interval %d, expected at least 1 day", h.Name, h.Schedule.IntervalDays),
					HabitIDs:    []string{h.ID},
				})
			}
		case models.ScheduleWeekly:
			if h.Schedule.TimesPerWeek < 1 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictNonPositiveTarget,
					Description: fmt.Sprintf("habit %q has weekly target %d, expected at least 1", h.Name, h.Schedule.TimesPerWeek),
					HabitIDs:    []string{h.ID},
				})
			}
		default:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownScheduleType,
				Description: fmt.Sprintf("habit %q has unknown schedule type %q", h.Name, h.Schedule.Type),
				HabitIDs:    []string{h.ID},
			})
		}

		if h.Wager != nil && h.Wager.IsActive && h.Wager.TargetStreak < 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictWagerTarget,
				Description: fmt.Sprintf("habit %q has a wager with target streak %d, expected at least 1", h.Name, h.Wager.TargetStreak),
				HabitIDs:    []string{h.ID},
			})
		}

		if h.ChainedTo != "" {
			chainTargets[h.ChainedTo] = append(chainTargets[h.ChainedTo], h.ID)
			if next, ok := byID[h.ChainedTo]; ok && next.ChainedFrom != h.ID {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictChainAsymmetry,
					Description: fmt.Sprintf("habit %q chains to %q but the back-pointer names %q", h.ID, h.ChainedTo, next.ChainedFrom),
					HabitIDs:    []string{h.ID, h.ChainedTo},
				})
			}
		}
		if h.ChainedFrom != "" {
			if prev, ok := byID[h.ChainedFrom]; ok && prev.ChainedTo != h.ID {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictChainAsymmetry,
					Description: fmt.Sprintf("habit %q claims predecessor %q but that habit chains to %q", h.ID, h.ChainedFrom, prev.ChainedTo),
					HabitIDs:    []string{h.ID, h.ChainedFrom},
				})
			}
		}
	}

	for target, sources := range chainTargets {
		if len(sources) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateChainLink,
				Description: fmt.Sprintf("habit %q is the chain target of %d habits", target, len(sources)),
				HabitIDs:    append(sources, target),
			})
		}
	}

	return result
}
