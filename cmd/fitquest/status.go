// ABOUTME: CLI command showing streak, freeze, and XP status.
// ABOUTME: Running it applies the gap check for elapsed real-world time.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitquest/internal/xp"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show streak and XP status",
	Long: `Show your current streak, longest streak, freeze tokens, and XP.

Checking status also reconciles the streak with elapsed time: missed days
are bridged with streak freezes when you have enough, and the streak is
reset when you don't. A single missed Sunday is always forgiven.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		streakData, total := app.Status()
		level, into, width := xp.Level(total)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Streak: %d day(s)\n", streakData.CurrentStreak)
		fmt.Printf("Longest: %d day(s)\n", streakData.LongestStreak)
		fmt.Printf("Freezes: %d\n", streakData.StreakFreezes)
		if streakData.LastWorkoutDate != nil {
			faint.Printf("Last credited day: %s\n", streakData.LastWorkoutDate)
		} else {
			faint.Println("No workouts logged yet.")
		}

		fmt.Println()
		bold.Printf("XP: %d (level %d)\n", total, level)
		faint.Printf("Progress to next level: %d/%d\n", into, width)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
