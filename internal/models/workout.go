// ABOUTME: Workout model for exercise session tracking.
// ABOUTME: Records are immutable once created and feed the streak/XP engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Intensity represents the effort level of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// AllIntensities returns all valid intensity levels.
var AllIntensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh}

// IsValidIntensity checks if a string is a valid intensity level.
func IsValidIntensity(s string) bool {
	for _, i := range AllIntensities {
		if string(i) == s {
			return true
		}
	}
	return false
}

// Workout represents a single exercise session.
type Workout struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	Date            Day       `json:"date" yaml:"date"`
	ExerciseType    string    `json:"exerciseType" yaml:"exercise_type"`
	DurationMinutes int       `json:"duration" yaml:"duration_minutes"`
	Intensity       Intensity `json:"intensity" yaml:"intensity"`
	UserWeightKg    float64   `json:"userWeightKg" yaml:"user_weight_kg"`
	CaloriesBurned  float64   `json:"caloriesBurned" yaml:"calories_burned"`
	Notes           *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt" yaml:"created_at"`
}

// NewWorkout creates a new Workout with generated UUID and current timestamp.
func NewWorkout(exerciseType string, date Day, durationMinutes int, intensity Intensity, userWeightKg float64) *Workout {
	return &Workout{
		ID:              uuid.New(),
		Date:            date,
		ExerciseType:    exerciseType,
		DurationMinutes: durationMinutes,
		Intensity:       intensity,
		UserWeightKg:    userWeightKg,
		CreatedAt:       time.Now(),
	}
}

// WithCalories sets the estimated calories burned.
func (w *Workout) WithCalories(kcal float64) *Workout {
	w.CaloriesBurned = kcal
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}
