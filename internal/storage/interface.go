package storage

import "github.com/julianstephens/habitcore/internal/models"

// Provider is the boundary to the persistence collaborator. The engine
// itself never touches storage; commands load a snapshot through this
// interface, run the pure computations, and write derived fields back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error

	// Habits
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	AddHabit(models.Habit) error
	UpdateHabit(models.Habit) error

	// Completions
	GetAllCompletions() ([]models.Completion, error)
	GetCompletion(habitID, day string) (models.Completion, error)
	AddCompletion(models.Completion) error
	DeleteCompletion(id string) error

	// Members
	GetAllMembers() ([]models.Member, error)

	// Utils
	GetConfigPath() string
}
