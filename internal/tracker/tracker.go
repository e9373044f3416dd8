// ABOUTME: Coordinator tying the streak and XP stores to the workout log.
// ABOUTME: Captures before/after streak snapshots so milestone bonuses fire once.
package tracker

import (
	"fmt"
	"time"

	"github.com/harperreed/fitquest/internal/models"
	"github.com/harperreed/fitquest/internal/notify"
	"github.com/harperreed/fitquest/internal/storage"
	"github.com/harperreed/fitquest/internal/streak"
	"github.com/harperreed/fitquest/internal/xp"
)

// Tracker orchestrates workout logging, goal completion, and resets.
type Tracker struct {
	repo    storage.Repository
	streaks *streak.Store
	xp      *xp.Store
}

// New creates a Tracker over the given repository.
func New(repo storage.Repository, clock streak.Clock, notifier notify.Notifier) *Tracker {
	return &Tracker{
		repo:    repo,
		streaks: streak.NewStore(repo, clock, notifier),
		xp:      xp.NewStore(repo, notifier),
	}
}

// LogWorkout credits the workout toward the streak, awards XP (with any
// milestone bonus implied by the streak transition), and appends the record
// to the workout log. The updated streak state and XP total are returned
// for display.
func (t *Tracker) LogWorkout(w *models.Workout) (models.StreakData, int, error) {
	before := t.streaks.Load()
	after := t.streaks.RecordWorkout(before, w.Date)

	total := t.xp.Award(t.xp.Load(), xp.EventLogWorkout, xp.AwardOptions{
		Before: &before,
		After:  &after,
	})

	if err := t.repo.CreateWorkout(w); err != nil {
		return after, total, fmt.Errorf("save workout: %w", err)
	}
	return after, total, nil
}

// CompleteGoal marks the goal completed and awards difficulty-scaled XP.
// Streak state is untouched. Completing an already-completed goal is an
// error rather than a second award.
func (t *Tracker) CompleteGoal(idOrPrefix string) (*models.Goal, int, error) {
	g, err := t.repo.GetGoal(idOrPrefix)
	if err != nil {
		return nil, 0, err
	}
	if g.Completed {
		return nil, 0, fmt.Errorf("goal already completed: %s", g.Title)
	}

	g.Complete(time.Now())
	if err := t.repo.UpdateGoal(g); err != nil {
		return nil, 0, fmt.Errorf("update goal: %w", err)
	}

	total := t.xp.Award(t.xp.Load(), xp.EventCompleteGoal, xp.AwardOptions{
		Multiplier: g.Difficulty.Multiplier(),
	})
	return g, total, nil
}

// Status runs the load-time gap check and returns the current streak state
// and XP total.
func (t *Tracker) Status() (models.StreakData, int) {
	return t.streaks.Load(), t.xp.Load()
}

// ResetAll wipes both engine states and the workout and goal collections.
func (t *Tracker) ResetAll() error {
	if _, err := t.streaks.Reset(); err != nil {
		return err
	}
	if _, err := t.xp.Reset(); err != nil {
		return err
	}
	if err := t.repo.Wipe(); err != nil {
		return fmt.Errorf("wipe collections: %w", err)
	}
	return nil
}
