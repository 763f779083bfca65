package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitcore/internal/constants"
	"github.com/julianstephens/habitcore/internal/engine"
	"github.com/julianstephens/habitcore/internal/models"
)

// File is the on-disk YAML shape of the engine configuration. Every field
// is optional; omitted fields fall back to the shipped defaults.
type File struct {
	WeekStart      string `yaml:"week_start,omitempty"`
	RateWindowDays int    `yaml:"rate_window_days,omitempty"`
	Milestones     []struct {
		ID        string `yaml:"id"`
		Type      string `yaml:"type"`
		Threshold int    `yaml:"threshold"`
		Tier      int    `yaml:"tier"`
		Title     string `yaml:"title"`
	} `yaml:"milestones,omitempty"`
}

// Load reads an engine configuration from path. A missing file is not an
// error; the defaults apply.
func Load(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if f.WeekStart != "" {
		wd, err := ParseWeekday(f.WeekStart)
		if err != nil {
			return cfg, err
		}
		cfg.WeekStart = wd
	}
	if f.RateWindowDays > 0 {
		cfg.RateWindowDays = f.RateWindowDays
	}
	if len(f.Milestones) > 0 {
		table := make([]models.Milestone, 0, len(f.Milestones))
		for _, m := range f.Milestones {
			table = append(table, models.Milestone{
				ID:        m.ID,
				Type:      models.MilestoneType(m.Type),
				Threshold: m.Threshold,
				Tier:      m.Tier,
				Title:     m.Title,
			})
		}
		cfg.Milestones = table
	}

	return cfg, nil
}

// ParseWeekday parses a weekday by English name or 0-6 index (0=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sun", "sunday", "0":
		return time.Sunday, nil
	case "mon", "monday", "1":
		return time.Monday, nil
	case "tue", "tuesday", "2":
		return time.Tuesday, nil
	case "wed", "wednesday", "3":
		return time.Wednesday, nil
	case "thu", "thursday", "4":
		return time.Thursday, nil
	case "fri", "friday", "5":
		return time.Friday, nil
	case "sat", "saturday", "6":
		return time.Saturday, nil
	default:
		return constants.DefaultWeekStart, fmt.Errorf("invalid weekday: %s", s)
	}
}
