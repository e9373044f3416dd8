// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON and YAML export formats including engine state.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitquest/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Workouts   []*models.Workout  `json:"workouts" yaml:"workouts"`
	Goals      []*models.Goal     `json:"goals" yaml:"goals"`
	Streak     *models.StreakData `json:"streak,omitempty" yaml:"streak,omitempty"`
	XP         int                `json:"xp" yaml:"xp"`
}

// collectExport gathers all records and engine state from a repository.
func collectExport(r Repository) (*ExportData, error) {
	workouts, err := r.ListWorkouts(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	goals, err := r.ListGoals(nil)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitquest",
		Workouts:   workouts,
		Goals:      goals,
	}

	if streak, found, err := r.LoadStreak(); err == nil && found {
		s := streak
		out.Streak = &s
	}
	if xp, found, err := r.LoadXP(); err == nil && found {
		out.XP = xp
	}

	return out, nil
}

// applyImport writes records and engine state from an export into a repository.
func applyImport(r Repository, data *ExportData) error {
	for _, w := range data.Workouts {
		if err := r.CreateWorkout(w); err != nil {
			return fmt.Errorf("import workout: %w", err)
		}
	}
	for _, g := range data.Goals {
		if err := r.CreateGoal(g); err != nil {
			return fmt.Errorf("import goal: %w", err)
		}
	}
	if data.Streak != nil {
		if err := r.SaveStreak(*data.Streak); err != nil {
			return fmt.Errorf("import streak: %w", err)
		}
	}
	if data.XP > 0 {
		if err := r.SaveXP(data.XP); err != nil {
			return fmt.Errorf("import xp: %w", err)
		}
	}
	return nil
}

// ExportJSON serializes all repository data as indented JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML serializes all repository data as YAML.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON parses a JSON export and loads it into the repository.
func ImportJSON(r Repository, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse export: %w", err)
	}
	return r.ImportData(&data)
}
