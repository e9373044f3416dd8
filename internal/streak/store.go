// ABOUTME: Streak store wrapping pure transitions with persistence and notifications.
// ABOUTME: Load applies gap resolution; RecordWorkout credits a logged workout.
package streak

import (
	"fmt"

	"github.com/harperreed/fitquest/internal/models"
	"github.com/harperreed/fitquest/internal/notify"
	"github.com/harperreed/fitquest/internal/storage"
)

// Store owns the persisted streak record.
type Store struct {
	repo     storage.Repository
	clock    Clock
	notifier notify.Notifier
}

// NewStore creates a streak store over the given repository.
func NewStore(repo storage.Repository, clock Clock, notifier notify.Notifier) *Store {
	return &Store{repo: repo, clock: clock, notifier: notifier}
}

// Load reads the persisted streak state, resolves any elapsed gap since the
// last credited day (consuming freezes or breaking the streak), persists the
// result, and returns it. Absent or corrupt state falls back to the zero
// default; storage failures degrade to in-memory state with a warning.
func (s *Store) Load() models.StreakData {
	data, found, err := s.repo.LoadStreak()
	if err != nil {
		s.notifier.Notify("Streak data unreadable", "Starting from a fresh streak record.", notify.SeverityWarning)
	}
	if !found {
		data = models.StreakData{}
	}

	resolved, events := resolveGap(data, s.clock.Today())
	s.persist(resolved)
	s.dispatch(events)
	return resolved
}

// RecordWorkout computes the post-workout streak state from the given
// snapshot and workout day, persists it, and returns it.
func (s *Store) RecordWorkout(current models.StreakData, day models.Day) models.StreakData {
	updated, events := applyWorkout(current, day)
	s.persist(updated)
	s.dispatch(events)
	return updated
}

// Reset deletes the persisted streak state and returns the zero default.
func (s *Store) Reset() (models.StreakData, error) {
	if err := s.repo.DeleteStreak(); err != nil {
		return models.StreakData{}, fmt.Errorf("reset streak: %w", err)
	}
	return models.StreakData{}, nil
}

// persist writes state best-effort; a failed write is reported but the
// in-memory result stands for the rest of the session.
func (s *Store) persist(data models.StreakData) {
	if err := s.repo.SaveStreak(data); err != nil {
		s.notifier.Notify("Could not save streak", err.Error(), notify.SeverityWarning)
	}
}

func (s *Store) dispatch(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventFreezeEarned:
			s.notifier.Notify(
				fmt.Sprintf("%d-day streak! Freeze earned", e.Streak),
				"A streak freeze was added to your stash. It will cover a missed day automatically.",
				notify.SeveritySuccess,
			)
		case EventStreakSaved:
			s.notifier.Notify(
				"Streak saved",
				fmt.Sprintf("%d streak freeze(s) covered your missed days.", e.FreezesUsed),
				notify.SeveritySuccess,
			)
		case EventStreakReset:
			s.notifier.Notify(
				"Streak reset",
				"Too many missed days and not enough freezes. Time to start a new streak!",
				notify.SeverityWarning,
			)
		}
	}
}
