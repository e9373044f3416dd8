// ABOUTME: Root Cobra command for fitquest CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fitquest/internal/config"
	"github.com/harperreed/fitquest/internal/notify"
	"github.com/harperreed/fitquest/internal/storage"
	"github.com/harperreed/fitquest/internal/streak"
	"github.com/harperreed/fitquest/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
	app  *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "fitquest",
	Short: "Local-first fitness tracker with streaks and XP",
	Long: `Fitquest is a CLI for tracking workouts and fitness goals, with a
streak and XP system to keep you moving.

STREAKS:

  Work out on consecutive days to build a streak. Every 7 days of streak
  earns a streak freeze, which automatically covers a missed day. Sundays
  are rest days: skipping a single Sunday never breaks your streak.

QUICK START:

  $ fitquest log run --duration 30              # Log a run
  $ fitquest log lift -d 45 -i high -n "Legs"   # Log an intense session
  $ fitquest status                             # See streak, freezes, XP
  $ fitquest history                            # List recent workouts

GOALS:

  $ fitquest goal add "Run a 10k" --difficulty hard
  $ fitquest goal list
  $ fitquest goal complete abc123    # Awards difficulty-scaled XP

MCP INTEGRATION:

  Run 'fitquest mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitquest": { "command": "fitquest", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  All data stays on this machine, in a local key-value store under
  ~/.local/share/fitquest. Pick the sqlite backend via
  ~/.config/fitquest/config.json if you prefer a single-file database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		app = tracker.New(repo, streak.SystemClock(), notify.NewConsole())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
