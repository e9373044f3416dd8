// ABOUTME: CLI commands for managing fitness goals.
// ABOUTME: Supports add, list, complete, and delete subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitquest/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalDifficulty string
	goalAll        bool
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Track fitness goals and earn XP for completing them.

Goal difficulty scales the completion award: easy pays the base XP,
medium pays 1.5x, and hard pays 2x.

WORKFLOW:

  1. Create a goal:     fitquest goal add "Run a 10k" --difficulty hard
  2. See open goals:    fitquest goal list
  3. Complete it:       fitquest goal complete abc123`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new goal",
	Long: `Add a new fitness goal.

Examples:
  fitquest goal add "Run a 10k" --difficulty hard
  fitquest goal add "Stretch daily for a week"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		difficulty := models.DifficultyMedium
		if goalDifficulty != "" {
			if !models.IsValidDifficulty(goalDifficulty) {
				return fmt.Errorf("unknown difficulty: %s (use easy, medium, or hard)", goalDifficulty)
			}
			difficulty = models.Difficulty(goalDifficulty)
		}

		g := models.NewGoal(title, difficulty)
		if err := repo.CreateGoal(g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Added %s goal: %s", g.Difficulty, g.Title)
		fmt.Printf("  ID: %s\n", g.ID.String()[:8])
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var completed *bool
		if !goalAll {
			open := false
			completed = &open
		}

		goals, err := repo.ListGoals(completed)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goals {
			mark := " "
			if g.Completed {
				mark = "✓"
			}
			fmt.Printf("%s %s %s %s\n",
				mark,
				faint.Sprint(g.ID.String()[:8]),
				padRight(string(g.Difficulty), 6),
				g.Title)
		}
		return nil
	},
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a goal and earn XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, total, err := app.CompleteGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to complete goal: %w", err)
		}

		fmt.Printf("  %q done. XP total: %d\n", g.Title, total)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteGoal(args[0]); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Green("✓ Deleted goal %s", args[0])
		return nil
	},
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalDifficulty, "difficulty", "D", "", "goal difficulty: easy, medium, hard (default medium)")
	goalListCmd.Flags().BoolVarP(&goalAll, "all", "a", false, "include completed goals")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalCompleteCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
