// ABOUTME: Tests for the Workout model and intensity validation.
package models

import (
	"testing"
	"time"
)

func TestNewWorkout(t *testing.T) {
	date := NewDay(2026, time.August, 25)
	w := NewWorkout("run", date, 30, IntensityMedium, 80)

	if w.ID.String() == "" {
		t.Error("expected generated ID")
	}
	if w.ExerciseType != "run" {
		t.Errorf("ExerciseType = %s, want run", w.ExerciseType)
	}
	if !w.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", w.Date, date)
	}
	if w.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %d, want 30", w.DurationMinutes)
	}
	if w.Intensity != IntensityMedium {
		t.Errorf("Intensity = %s, want medium", w.Intensity)
	}
	if w.UserWeightKg != 80 {
		t.Errorf("UserWeightKg = %v, want 80", w.UserWeightKg)
	}
	if w.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if w.Notes != nil {
		t.Error("expected nil Notes by default")
	}
}

func TestWorkoutBuilders(t *testing.T) {
	w := NewWorkout("yoga", NewDay(2026, time.August, 25), 60, IntensityLow, 70).
		WithCalories(245.5).
		WithNotes("evening session")

	if w.CaloriesBurned != 245.5 {
		t.Errorf("CaloriesBurned = %v, want 245.5", w.CaloriesBurned)
	}
	if w.Notes == nil || *w.Notes != "evening session" {
		t.Errorf("Notes = %v, want 'evening session'", w.Notes)
	}
}

func TestIsValidIntensity(t *testing.T) {
	for _, i := range AllIntensities {
		if !IsValidIntensity(string(i)) {
			t.Errorf("expected %s to be valid", i)
		}
	}
	for _, s := range []string{"", "extreme", "Medium", "LOW"} {
		if IsValidIntensity(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
