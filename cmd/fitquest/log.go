// ABOUTME: CLI command for logging workouts.
// ABOUTME: Runs the streak/XP engine and prints the resulting progress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitquest/internal/calories"
	"github.com/harperreed/fitquest/internal/models"
	"github.com/spf13/cobra"
)

const defaultWeightKg = 75

var (
	logDuration  int
	logIntensity string
	logWeight    float64
	logDate      string
	logNotes     string
)

var logCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log a workout",
	Long: `Log a workout session. The exercise type is freeform - use whatever
makes sense for you: run, lift, swim, cycle, yoga, hiit, walk, climb, etc.

Logging a workout extends your streak (one step per calendar day), may earn
a streak freeze at 7-day milestones, and awards XP including milestone
bonuses.

Examples:
  fitquest log run --duration 30
  fitquest log lift -d 45 -i high --notes "Leg day"
  fitquest log swim -d 60 --date 2026-08-30   # Backfill a past day`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseType := args[0]

		if logDuration <= 0 {
			return fmt.Errorf("duration must be positive (use --duration)")
		}

		intensity := models.IntensityMedium
		if logIntensity != "" {
			if !models.IsValidIntensity(logIntensity) {
				return fmt.Errorf("unknown intensity: %s (use low, medium, or high)", logIntensity)
			}
			intensity = models.Intensity(logIntensity)
		}

		weight := logWeight
		if weight <= 0 {
			weight = cfg.WeightKg
		}
		if weight <= 0 {
			weight = defaultWeightKg
		}

		day := models.Today()
		if logDate != "" {
			parsed, err := models.ParseDay(logDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", logDate)
			}
			day = parsed
		}

		w := models.NewWorkout(exerciseType, day, logDuration, intensity, weight)
		w.WithCalories(calories.Estimate(intensity, logDuration, weight))
		if logNotes != "" {
			w.WithNotes(logNotes)
		}

		streakData, total, err := app.LogWorkout(w)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s workout", exerciseType)
		fmt.Printf("  ID: %s\n", w.ID.String()[:8])
		fmt.Printf("  Duration: %d min (%s), ~%.0f kcal\n", w.DurationMinutes, w.Intensity, w.CaloriesBurned)
		fmt.Printf("  Streak: %d day(s)  Freezes: %d  XP: %d\n",
			streakData.CurrentStreak, streakData.StreakFreezes, total)

		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logDuration, "duration", "d", 0, "duration in minutes")
	logCmd.Flags().StringVarP(&logIntensity, "intensity", "i", "", "effort level: low, medium, high (default medium)")
	logCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "body weight in kg for the calorie estimate")
	logCmd.Flags().StringVar(&logDate, "date", "", "workout date (YYYY-MM-DD), defaults to today")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "workout notes")

	rootCmd.AddCommand(logCmd)
}
