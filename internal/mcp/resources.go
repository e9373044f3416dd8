// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fitquest://status and fitquest://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitquest/internal/xp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitquest://status - streak and XP dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitquest://status",
		Name:        "Streak & XP Status",
		Description: "Current streak, freeze tokens, XP total, and level progress",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// fitquest://recent - recent workouts and open goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitquest://recent",
		Name:        "Recent Activity",
		Description: "Last 10 workouts and all open goals",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleStatusResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	streakData, total := s.app.Status()
	level, into, width := xp.Level(total)

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"streak": map[string]interface{}{
			"current":           streakData.CurrentStreak,
			"longest":           streakData.LongestStreak,
			"freezes":           streakData.StreakFreezes,
			"last_workout_date": streakData.LastWorkoutDate,
		},
		"xp": map[string]interface{}{
			"total":          total,
			"level":          level,
			"level_progress": fmt.Sprintf("%d/%d", into, width),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitquest://status",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.repo.ListWorkouts(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	open := false
	goals, err := s.repo.ListGoals(&open)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	result := map[string]interface{}{
		"workouts":   workouts,
		"open_goals": goals,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitquest://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
