// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: Defines the contract for workouts, goals, and persisted engine state.
package storage

import (
	"errors"

	"github.com/harperreed/fitquest/internal/models"
)

// ErrNotFound is returned when a record or state key does not exist.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for fitness data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout operations
	CreateWorkout(w *models.Workout) error
	GetWorkout(idOrPrefix string) (*models.Workout, error)
	ListWorkouts(exerciseType *string, limit int) ([]*models.Workout, error)
	DeleteWorkout(idOrPrefix string) error

	// Goal operations
	CreateGoal(g *models.Goal) error
	GetGoal(idOrPrefix string) (*models.Goal, error)
	ListGoals(completed *bool) ([]*models.Goal, error)
	UpdateGoal(g *models.Goal) error
	DeleteGoal(idOrPrefix string) error

	// Streak engine state. Load returns found=false when the state is
	// absent; a corrupt payload additionally returns a non-nil error so
	// callers can warn before falling back to the zero default.
	LoadStreak() (models.StreakData, bool, error)
	SaveStreak(data models.StreakData) error
	DeleteStreak() error

	// XP engine state, stored as a decimal-string integer.
	LoadXP() (int, bool, error)
	SaveXP(total int) error
	DeleteXP() error

	// Wipe removes all workout and goal records. Engine state is cleared
	// separately through DeleteStreak/DeleteXP.
	Wipe() error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
