package wager

import "github.com/julianstephens/habitcore/internal/models"

// Resolve returns the wager with its status advanced for the given streak
// length. completedBy is the member whose completion triggered the
// recompute; it may be empty for bulk recomputes.
//
// The only transition made here is pending -> won. Winning is one-way: a
// won wager records a completed bet and stays won even if the streak later
// breaks. A loss is never derived from streak math alone: a broken streak
// short of the target is ambiguous while the clock is still running, so
// deciding "lost" is left to an explicit caller action.
func Resolve(w models.Wager, currentStreak int, completedBy string) models.Wager {
	if !w.IsActive || w.Status != models.WagerPending {
		return w
	}
	if currentStreak < w.TargetStreak {
		return w
	}

	w.Status = models.WagerWon

	// Head-to-head wagers credit the member who closed the bet. Larger
	// groups win cooperatively and carry no single winner.
	if len(w.Participants) == 2 && isParticipant(w, completedBy) {
		w.WinnerID = completedBy
	}
	return w
}

func isParticipant(w models.Wager, memberID string) bool {
	for _, p := range w.Participants {
		if p == memberID {
			return true
		}
	}
	return false
}
