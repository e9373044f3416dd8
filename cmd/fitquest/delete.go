// ABOUTME: CLI command for deleting workouts.
// ABOUTME: Accepts a full UUID or an unambiguous ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Long: `Delete a workout by ID or ID prefix.

Deleting a workout only removes the log entry; it does not rewrite streak
history that the workout already earned.

Examples:
  fitquest delete abc123ef    # 8-char prefix from 'fitquest history'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
