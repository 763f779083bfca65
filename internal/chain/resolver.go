package chain

import (
	"fmt"

	"github.com/julianstephens/habitcore/internal/models"
)

// Routine is a maximal ordered sequence of habits linked by chain pointers.
// A habit with no links is a routine of length 1.
type Routine struct {
	Habits []models.Habit
}

// Warning flags a data-integrity problem found while resolving chains. A
// malformed chain is excluded from the result; other chains are unaffected.
type Warning struct {
	HabitID string
	Message string
}

// Resolve orders habits into routines by walking ChainedTo pointers.
//
// The two chain pointers are maintained by separate writes from the editing
// layer and can transiently disagree, so nothing here trusts referential
// symmetry: the walk follows ChainedTo with a visited set, asymmetric
// back-pointers are reported, and a cycle aborts that chain instead of
// looping.
func Resolve(habits []models.Habit) ([]Routine, []Warning) {
	byID := make(map[string]*models.Habit, len(habits))
	for i := range habits {
		byID[habits[i].ID] = &habits[i]
	}

	// A habit is a chain head when no existing habit points to it.
	inbound := make(map[string]string)
	var warnings []Warning
	for i := range habits {
		h := &habits[i]
		if h.ChainedTo == "" {
			continue
		}
		next, ok := byID[h.ChainedTo]
		if !ok {
			warnings = append(warnings, Warning{
				HabitID: h.ID,
				Message: fmt.Sprintf("habit %q chains to missing habit %q", h.ID, h.ChainedTo),
			})
			continue
		}
		if prev, dup := inbound[next.ID]; dup {
			warnings = append(warnings, Warning{
				HabitID: h.ID,
				Message: fmt.Sprintf("habits %q and %q both chain to %q", prev, h.ID, next.ID),
			})
			continue
		}
		inbound[next.ID] = h.ID
		if next.ChainedFrom != h.ID {
			warnings = append(warnings, Warning{
				HabitID: next.ID,
				Message: fmt.Sprintf("habit %q back-pointer %q does not match predecessor %q", next.ID, next.ChainedFrom, h.ID),
			})
		}
	}

	var routines []Routine
	emitted := make(map[string]bool)

	for i := range habits {
		head := &habits[i]
		if _, hasInbound := inbound[head.ID]; hasInbound {
			continue
		}

		seen := make(map[string]bool)
		var seq []models.Habit
		cur := head
		malformed := false
		for cur != nil {
			if seen[cur.ID] {
				warnings = append(warnings, Warning{
					HabitID: cur.ID,
					Message: fmt.Sprintf("chain starting at %q revisits habit %q", head.ID, cur.ID),
				})
				malformed = true
				break
			}
			seen[cur.ID] = true
			seq = append(seq, *cur)
			if cur.ChainedTo == "" {
				break
			}
			cur = byID[cur.ChainedTo]
		}

		for id := range seen {
			emitted[id] = true
		}
		if !malformed {
			routines = append(routines, Routine{Habits: seq})
		}
	}

	// Habits never reached from a head sit on a pure cycle. Flag them once
	// and leave them out of the routine view.
	for i := range habits {
		h := &habits[i]
		if emitted[h.ID] {
			continue
		}
		warnings = append(warnings, Warning{
			HabitID: h.ID,
			Message: fmt.Sprintf("habit %q is part of a chain cycle", h.ID),
		})
	}

	return routines, warnings
}
