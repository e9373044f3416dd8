// ABOUTME: Goal model for fitness goal tracking.
// ABOUTME: Goal completion triggers a difficulty-scaled XP award.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty represents how hard a goal is, scaling its completion XP.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all valid goal difficulties.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValidDifficulty checks if a string is a valid goal difficulty.
func IsValidDifficulty(s string) bool {
	for _, d := range AllDifficulties {
		if string(d) == s {
			return true
		}
	}
	return false
}

// Multiplier returns the XP multiplier for this difficulty.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// Goal represents a fitness goal the user is working toward.
type Goal struct {
	ID          uuid.UUID  `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
}

// NewGoal creates a new Goal with generated UUID and current timestamp.
func NewGoal(title string, difficulty Difficulty) *Goal {
	return &Goal{
		ID:         uuid.New(),
		Title:      title,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}
}

// Complete marks the goal completed at the given time.
func (g *Goal) Complete(at time.Time) {
	g.Completed = true
	g.CompletedAt = &at
}
