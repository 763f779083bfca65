package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitcore/internal/cli"
	"github.com/julianstephens/habitcore/internal/config"
	"github.com/julianstephens/habitcore/internal/engine"
	"github.com/julianstephens/habitcore/internal/errors"
	"github.com/julianstephens/habitcore/internal/logger"
	"github.com/julianstephens/habitcore/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Snapshot file path." type:"path" default:"~/.config/habitcore/habitcore.json"`
	Config  string `help:"Engine config file path (YAML)." type:"path" default:"~/.config/habitcore/config.yaml"`
	Debug   bool   `help:"Enable debug logging."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize habitcore storage."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits."`
	Mark         cli.MarkCmd         `cmd:"" help:"Toggle a habit completion for a day."`
	Streaks      cli.StreaksCmd      `cmd:"" help:"Show streak state for every habit."`
	Routines     cli.RoutinesCmd     `cmd:"" help:"Show chained habit routines."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show milestone progress."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show weekly consistency and completion rates."`
	Leaderboard  cli.LeaderboardCmd  `cmd:"" help:"Show per-member contributions."`
	Wagers       cli.WagersCmd       `cmd:"" help:"Manage habit wagers."`
	Validate     cli.ValidateCmd     `cmd:"" help:"Check the snapshot for integrity problems."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitcore"),
		kong.Description("Habit scheduling and streak engine"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Store),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	engineCfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:  storage.NewJSONStore(CLI.Store),
		Engine: engine.New(engineCfg),
	}

	errors.Fatal(ctx.Run(appCtx))
}
