// ABOUTME: CLI command wiping all fitness data and engine state.
// ABOUTME: Requires confirmation unless --force is given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all data",
	Long: `Reset all fitquest data: streak state, XP total, workouts, and goals.

This cannot be undone. You will be asked to confirm unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Print("This wipes your streak, XP, workouts, and goals. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.ResetAll(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ All data reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
