package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/svasisht/prepdash/internal/cli"
	"github.com/svasisht/prepdash/internal/constants"
	"github.com/svasisht/prepdash/internal/errors"
	"github.com/svasisht/prepdash/internal/logger"
	"github.com/svasisht/prepdash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize prepdash storage with the default syllabus."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Plan    cli.PlanCmd    `cmd:"" help:"Generate a day plan."`
	Day     cli.DayCmd     `cmd:"" help:"Show the schedule for a day."`
	Balance cli.BalanceCmd `cmd:"" help:"Analyze study balance for a day."`
	Subject cli.SubjectCmd `cmd:"" help:"Manage syllabus progress."`
	Log     cli.LogCmd     `cmd:"" help:"Record a study session."`
	Routine cli.RoutineCmd `cmd:"" help:"Edit the daily routine anchors."`
	Coach   cli.CoachCmd   `cmd:"" help:"Coaching prompts and plan-change directives."`
	Exams   cli.ExamsCmd   `cmd:"" help:"List the board exam timetable."`
	Backup  cli.BackupCmd  `cmd:"" help:"Back up or restore the study data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("prepdash"),
		kong.Description("Board-exam study planner and dashboard"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Storage backend follows the config path extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
