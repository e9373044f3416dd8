// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Exposes workout logging, goals, and streak/XP status to AI assistants.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fitquest/internal/calories"
	"github.com/harperreed/fitquest/internal/models"
	"github.com/harperreed/fitquest/internal/xp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout session; updates the streak and awards XP",
	}, s.handleLogWorkout)

	// get_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get current streak, freeze tokens, XP total, and level",
	}, s.handleGetStatus)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, optionally filtered by exercise type",
	}, s.handleListWorkouts)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a fitness goal with a difficulty level",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals, optionally only open or completed ones",
	}, s.handleListGoals)

	// complete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_goal",
		Description: "Mark a goal completed and award difficulty-scaled XP",
	}, s.handleCompleteGoal)

	// reset_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_progress",
		Description: "Wipe all data: streak, XP, workouts, and goals. Requires confirm=true",
	}, s.handleResetProgress)
}

// Tool input/output types

type logWorkoutInput struct {
	ExerciseType    string  `json:"exercise_type" jsonschema:"Type of exercise (run, lift, cycle, swim, yoga, etc.)"`
	DurationMinutes int     `json:"duration_minutes" jsonschema:"Duration in minutes"`
	Intensity       string  `json:"intensity,omitempty" jsonschema:"Effort level: low, medium, or high (default medium)"`
	WeightKg        float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg for the calorie estimate (default 75)"`
	Date            string  `json:"date,omitempty" jsonschema:"Workout date (YYYY-MM-DD), defaults to today"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logWorkoutOutput struct {
	ID             string  `json:"id"`
	CaloriesBurned float64 `json:"calories_burned"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	StreakFreezes  int     `json:"streak_freezes"`
	XPTotal        int     `json:"xp_total"`
	Message        string  `json:"message"`
}

type statusOutput struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	StreakFreezes   int    `json:"streak_freezes"`
	LastWorkoutDate string `json:"last_workout_date,omitempty"`
	XPTotal         int    `json:"xp_total"`
	Level           int    `json:"level"`
}

type listWorkoutsInput struct {
	ExerciseType string `json:"exercise_type,omitempty" jsonschema:"Filter by exercise type"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addGoalInput struct {
	Title      string `json:"title" jsonschema:"Goal title"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"Goal difficulty: easy, medium, or hard (default medium)"`
}

type goalOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Message    string `json:"message"`
}

type listGoalsInput struct {
	Completed *bool `json:"completed,omitempty" jsonschema:"Filter by completion state"`
}

type completeGoalInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

type completeGoalOutput struct {
	Title   string `json:"title"`
	XPTotal int    `json:"xp_total"`
	Message string `json:"message"`
}

type resetProgressInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to actually reset"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	if input.DurationMinutes <= 0 {
		return nil, logWorkoutOutput{}, fmt.Errorf("duration must be positive")
	}

	intensity := models.IntensityMedium
	if input.Intensity != "" {
		if !models.IsValidIntensity(input.Intensity) {
			return nil, logWorkoutOutput{}, fmt.Errorf("unknown intensity: %s (use low, medium, or high)", input.Intensity)
		}
		intensity = models.Intensity(input.Intensity)
	}

	weight := input.WeightKg
	if weight <= 0 {
		weight = 75
	}

	day := models.Today()
	if input.Date != "" {
		parsed, err := models.ParseDay(input.Date)
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		day = parsed
	}

	w := models.NewWorkout(input.ExerciseType, day, input.DurationMinutes, intensity, weight)
	w.WithCalories(calories.Estimate(intensity, input.DurationMinutes, weight))
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	streakData, total, err := s.app.LogWorkout(w)
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, logWorkoutOutput{
		ID:             w.ID.String()[:8],
		CaloriesBurned: w.CaloriesBurned,
		CurrentStreak:  streakData.CurrentStreak,
		LongestStreak:  streakData.LongestStreak,
		StreakFreezes:  streakData.StreakFreezes,
		XPTotal:        total,
		Message:        fmt.Sprintf("Logged %s workout. Streak: %d days, XP: %d", input.ExerciseType, streakData.CurrentStreak, total),
	}, nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statusOutput, error) {
	streakData, total := s.app.Status()
	level, _, _ := xp.Level(total)

	out := statusOutput{
		CurrentStreak: streakData.CurrentStreak,
		LongestStreak: streakData.LongestStreak,
		StreakFreezes: streakData.StreakFreezes,
		XPTotal:       total,
		Level:         level,
	}
	if streakData.LastWorkoutDate != nil {
		out.LastWorkoutDate = streakData.LastWorkoutDate.String()
	}
	return nil, out, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var exerciseType *string
	if input.ExerciseType != "" {
		exerciseType = &input.ExerciseType
	}

	workouts, err := s.repo.ListWorkouts(exerciseType, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, workouts, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", input.ID),
	}, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	difficulty := models.DifficultyMedium
	if input.Difficulty != "" {
		if !models.IsValidDifficulty(input.Difficulty) {
			return nil, goalOutput{}, fmt.Errorf("unknown difficulty: %s (use easy, medium, or hard)", input.Difficulty)
		}
		difficulty = models.Difficulty(input.Difficulty)
	}

	g := models.NewGoal(input.Title, difficulty)
	if err := s.repo.CreateGoal(g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return nil, goalOutput{
		ID:         g.ID.String()[:8],
		Title:      g.Title,
		Difficulty: string(g.Difficulty),
		Message:    fmt.Sprintf("Added %s goal: %s (ID: %s)", g.Difficulty, g.Title, g.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.ListGoals(input.Completed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}

	return nil, goals, nil
}

func (s *Server) handleCompleteGoal(ctx context.Context, req *mcp.CallToolRequest, input completeGoalInput) (*mcp.CallToolResult, completeGoalOutput, error) {
	g, total, err := s.app.CompleteGoal(input.ID)
	if err != nil {
		return nil, completeGoalOutput{}, fmt.Errorf("failed to complete goal: %w", err)
	}

	return nil, completeGoalOutput{
		Title:   g.Title,
		XPTotal: total,
		Message: fmt.Sprintf("Completed goal %q. XP total: %d", g.Title, total),
	}, nil
}

func (s *Server) handleResetProgress(ctx context.Context, req *mcp.CallToolRequest, input resetProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, fmt.Errorf("reset not confirmed: pass confirm=true to wipe all data")
	}

	if err := s.app.ResetAll(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset: %w", err)
	}

	return nil, simpleOutput{
		Message: "All data reset: streak, XP, workouts, and goals wiped.",
	}, nil
}
