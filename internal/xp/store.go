// ABOUTME: XP store owning the persisted experience total.
// ABOUTME: Awards XP for engine events and dispatches milestone notifications.
package xp

import (
	"fmt"

	"github.com/harperreed/fitquest/internal/notify"
	"github.com/harperreed/fitquest/internal/storage"
)

// Store owns the persisted XP total.
type Store struct {
	repo     storage.Repository
	notifier notify.Notifier
}

// NewStore creates an XP store over the given repository.
func NewStore(repo storage.Repository, notifier notify.Notifier) *Store {
	return &Store{repo: repo, notifier: notifier}
}

// Load returns the persisted total, or 0 when absent or unreadable.
func (s *Store) Load() int {
	total, found, err := s.repo.LoadXP()
	if err != nil {
		s.notifier.Notify("XP data unreadable", "Starting from zero XP.", notify.SeverityWarning)
	}
	if !found {
		return 0
	}
	return total
}

// Award computes the XP gained for the event, persists the new total, and
// returns it. A failed write is reported but the in-memory total stands.
func (s *Store) Award(current int, event Event, opts AwardOptions) int {
	delta, milestone := computeDelta(event, opts)
	total := current + delta

	if err := s.repo.SaveXP(total); err != nil {
		s.notifier.Notify("Could not save XP", err.Error(), notify.SeverityWarning)
	}

	switch {
	case milestone != nil:
		s.notifier.Notify(
			fmt.Sprintf("%d-day milestone! +%d bonus XP", milestone.Days, milestone.Bonus),
			fmt.Sprintf("You earned %d XP total for this workout.", delta),
			notify.SeveritySuccess,
		)
	case event == EventCompleteGoal:
		s.notifier.Notify(
			fmt.Sprintf("Goal complete! +%d XP", delta),
			"",
			notify.SeveritySuccess,
		)
	}

	return total
}

// Reset deletes the persisted total and returns 0.
func (s *Store) Reset() (int, error) {
	if err := s.repo.DeleteXP(); err != nil {
		return 0, fmt.Errorf("reset xp: %w", err)
	}
	return 0, nil
}
