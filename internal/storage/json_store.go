package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/habitcore/internal/models"
)

// Store is the on-disk snapshot shape: the habits, completions and members
// of one space.
type Store struct {
	Version     int                          `json:"version"`
	Habits      map[string]models.Habit      `json:"habits"`
	Completions map[string]models.Completion `json:"completions"`
	Members     []models.Member              `json:"members"`
}

// JSONStore keeps the snapshot in a single JSON file. It stands in for the
// real persistence/sync collaborator; conflict resolution between writers
// is that collaborator's job, not ours.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Habits:      make(map[string]models.Habit),
		Completions: make(map[string]models.Completion),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitcore init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Completions == nil {
		s.store.Completions = make(map[string]models.Completion)
	}

	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	h, ok := s.store.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %s not found", id)
	}
	return h, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	for _, h := range s.store.Habits {
		if h.Name == name && h.DeletedAt == nil {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", name)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	habits := make([]models.Habit, 0, len(s.store.Habits))
	for _, h := range s.store.Habits {
		if h.DeletedAt != nil {
			continue
		}
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *JSONStore) AddHabit(h models.Habit) error {
	if _, exists := s.store.Habits[h.ID]; exists {
		return fmt.Errorf("habit %s already exists", h.ID)
	}
	s.store.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) UpdateHabit(h models.Habit) error {
	if _, exists := s.store.Habits[h.ID]; !exists {
		return fmt.Errorf("habit %s not found", h.ID)
	}
	s.store.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) GetAllCompletions() ([]models.Completion, error) {
	completions := make([]models.Completion, 0, len(s.store.Completions))
	for _, c := range s.store.Completions {
		completions = append(completions, c)
	}
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Day == completions[j].Day {
			return completions[i].ID < completions[j].ID
		}
		return completions[i].Day < completions[j].Day
	})
	return completions, nil
}

func (s *JSONStore) GetCompletion(habitID, day string) (models.Completion, error) {
	for _, c := range s.store.Completions {
		if c.HabitID == habitID && c.Day == day {
			return c, nil
		}
	}
	return models.Completion{}, fmt.Errorf("no completion for habit %s on %s", habitID, day)
}

func (s *JSONStore) AddCompletion(c models.Completion) error {
	s.store.Completions[c.ID] = c
	return s.save()
}

func (s *JSONStore) DeleteCompletion(id string) error {
	if _, exists := s.store.Completions[id]; !exists {
		return fmt.Errorf("completion %s not found", id)
	}
	delete(s.store.Completions, id)
	return s.save()
}

func (s *JSONStore) GetAllMembers() ([]models.Member, error) {
	return s.store.Members, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
