// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitquest/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log workouts and check your streak
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitquest": {
        "command": "fitquest",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout     Log a workout (updates streak, awards XP)
  get_status      Current streak, freezes, XP, and level
  list_workouts   List recent workouts
  delete_workout  Delete a workout by ID
  add_goal        Create a fitness goal
  list_goals      List goals
  complete_goal   Complete a goal for XP
  reset_progress  Wipe all data (requires confirm=true)

AVAILABLE RESOURCES:

  fitquest://status   Streak and XP dashboard
  fitquest://recent   Recent workouts and open goals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(app, repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
