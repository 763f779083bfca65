package wager

import (
	"testing"

	"github.com/julianstephens/habitcore/internal/models"
)

func activeWager(target int, participants ...string) models.Wager {
	return models.Wager{
		IsActive:     true,
		Description:  "loser does dishes",
		TargetStreak: target,
		StartDate:    "2024-01-01",
		Participants: participants,
		Status:       models.WagerPending,
	}
}

func TestResolve_PendingBelowTarget(t *testing.T) {
	w := Resolve(activeWager(14, "m1", "m2"), 13, "m1")
	if w.Status != models.WagerPending {
		t.Errorf("Expected status pending, got %s", w.Status)
	}
	if w.WinnerID != "" {
		t.Errorf("Expected no winner, got %s", w.WinnerID)
	}
}

func TestResolve_WonAtTarget(t *testing.T) {
	w := Resolve(activeWager(14, "m1", "m2"), 14, "m1")
	if w.Status != models.WagerWon {
		t.Errorf("Expected status won, got %s", w.Status)
	}
	if w.WinnerID != "m1" {
		t.Errorf("Expected winner m1, got %q", w.WinnerID)
	}
}

func TestResolve_WonIsSticky(t *testing.T) {
	w := Resolve(activeWager(14, "m1", "m2"), 14, "m1")
	if w.Status != models.WagerWon {
		t.Fatalf("Expected status won, got %s", w.Status)
	}

	// The streak breaking afterward must not demote a won wager.
	w = Resolve(w, 0, "m2")
	if w.Status != models.WagerWon {
		t.Errorf("Expected won wager to stay won, got %s", w.Status)
	}
	if w.WinnerID != "m1" {
		t.Errorf("Expected winner to stay m1, got %q", w.WinnerID)
	}
}

func TestResolve_GroupWagerHasNoSingleWinner(t *testing.T) {
	w := Resolve(activeWager(7, "m1", "m2", "m3"), 7, "m2")
	if w.Status != models.WagerWon {
		t.Errorf("Expected status won, got %s", w.Status)
	}
	if w.WinnerID != "" {
		t.Errorf("Expected cooperative win with no winner id, got %q", w.WinnerID)
	}
}

func TestResolve_NonParticipantCompletionNoWinner(t *testing.T) {
	w := Resolve(activeWager(7, "m1", "m2"), 7, "outsider")
	if w.Status != models.WagerWon {
		t.Errorf("Expected status won, got %s", w.Status)
	}
	if w.WinnerID != "" {
		t.Errorf("Expected no winner for non-participant completion, got %q", w.WinnerID)
	}
}

func TestResolve_InactiveWagerUntouched(t *testing.T) {
	w := activeWager(7, "m1", "m2")
	w.IsActive = false

	got := Resolve(w, 100, "m1")
	if got.Status != models.WagerPending || got.WinnerID != "" {
		t.Errorf("Expected inactive wager unchanged, got %+v", got)
	}
}

func TestResolve_LostWagerUntouched(t *testing.T) {
	w := activeWager(7, "m1", "m2")
	w.Status = models.WagerLost

	got := Resolve(w, 100, "m1")
	if got.Status != models.WagerLost {
		t.Errorf("Expected lost wager to stay lost, got %s", got.Status)
	}
}
