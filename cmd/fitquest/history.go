// ABOUTME: CLI command for listing logged workouts.
// ABOUTME: Supports filtering by exercise type and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyType  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "list"},
	Short:   "List logged workouts",
	Long: `List recent workouts from your log.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TYPE  DURATION  INTENSITY  KCAL  (NOTES)

  The ID is an 8-character prefix you can use with the delete command.

EXAMPLES:

  fitquest history                # Show last 20 workouts
  fitquest history --type run     # Show only runs
  fitquest history -n 50          # Show last 50 workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var exerciseType *string
		if historyType != "" {
			exerciseType = &historyType
		}

		workouts, err := repo.ListWorkouts(exerciseType, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			notes := ""
			if w.Notes != nil && *w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %s %4.0f kcal%s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.Date.String()),
				padRight(w.ExerciseType, 12),
				padRight(fmt.Sprintf("%d min", w.DurationMinutes), 8),
				padRight(string(w.Intensity), 6),
				w.CaloriesBurned,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().StringVarP(&historyType, "type", "t", "", "filter by exercise type")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(historyCmd)
}
