// ABOUTME: Pure state transitions for the workout streak engine.
// ABOUTME: Covers workout crediting, freeze awards, and elapsed-gap resolution.
package streak

import (
	"time"

	"github.com/harperreed/fitquest/internal/models"
)

// FreezeMilestoneInterval is the streak length interval at which a
// streak freeze token is awarded.
const FreezeMilestoneInterval = 7

// EventKind identifies a streak transition side effect.
type EventKind string

const (
	// EventFreezeEarned fires when a streak length milestone awards a freeze token.
	EventFreezeEarned EventKind = "freeze_earned"
	// EventStreakSaved fires when freeze tokens bridged a gap of missed days.
	EventStreakSaved EventKind = "streak_saved"
	// EventStreakReset fires when a gap could not be bridged and the streak broke.
	EventStreakReset EventKind = "streak_reset"
)

// Event describes a user-visible consequence of a streak transition.
// Transitions return events instead of dispatching notifications so the
// logic stays pure and testable.
type Event struct {
	Kind        EventKind
	Streak      int // streak length that triggered a freeze award
	FreezesUsed int // tokens consumed when a streak was saved
}

// applyWorkout computes the streak state after crediting a workout on the
// given day. Same-day re-logs leave the counters untouched; a one-day gap
// extends the streak; anything older restarts at one. Past-dated workouts
// never move the counters backward.
func applyWorkout(data models.StreakData, day models.Day) (models.StreakData, []Event) {
	prev := data.CurrentStreak

	switch {
	case data.LastWorkoutDate != nil && day.Equal(*data.LastWorkoutDate):
		// Same-day duplicate: idempotent for streak purposes.
	case data.LastWorkoutDate == nil:
		data.CurrentStreak = 1
	default:
		switch gap := data.LastWorkoutDate.DaysUntil(day); {
		case gap == 1:
			data.CurrentStreak++
		case gap > 1:
			// Streak broken by this log; freeze consumption happens only
			// on the load path, which has already run by now.
			data.CurrentStreak = 1
		}
		// gap <= 0 is a past-dated workout: counters unchanged.
	}

	if data.LastWorkoutDate == nil || data.LastWorkoutDate.Before(day) {
		d := day
		data.LastWorkoutDate = &d
	}

	if data.CurrentStreak > data.LongestStreak {
		data.LongestStreak = data.CurrentStreak
	}

	var events []Event
	if data.CurrentStreak > prev && data.CurrentStreak%FreezeMilestoneInterval == 0 {
		if data.LastFreezeEarnedDate == nil || !day.Equal(*data.LastFreezeEarnedDate) {
			data.StreakFreezes++
			d := day
			data.LastFreezeEarnedDate = &d
			events = append(events, Event{Kind: EventFreezeEarned, Streak: data.CurrentStreak})
		}
	}

	return data, events
}

// resolveGap reconciles the streak with elapsed real-world time. A gap of
// one day is still within grace (today's workout may yet arrive). A gap of
// exactly two days whose single skipped day was a Sunday is the weekly
// rest day and is forgiven without cost. Larger gaps consume one freeze
// token per fully missed day, or break the streak when tokens run out.
func resolveGap(data models.StreakData, today models.Day) (models.StreakData, []Event) {
	if data.LastWorkoutDate == nil {
		return data, nil
	}

	gap := data.LastWorkoutDate.DaysUntil(today)
	if gap <= 1 {
		return data, nil
	}

	if gap == 2 && data.LastWorkoutDate.AddDays(1).Weekday() == time.Sunday {
		// Bridge over the rest day so the next workout extends the streak
		// instead of seeing a two-day gap. No freeze is consumed and no
		// notification fires.
		sunday := data.LastWorkoutDate.AddDays(1)
		data.LastWorkoutDate = &sunday
		return data, nil
	}

	missed := gap - 1
	if data.StreakFreezes >= missed {
		data.StreakFreezes -= missed
		yesterday := today.AddDays(-1)
		data.LastWorkoutDate = &yesterday
		return data, []Event{{Kind: EventStreakSaved, FreezesUsed: missed}}
	}

	if data.CurrentStreak == 0 {
		// Already broken on a previous load; keep the true last-activity
		// date without re-announcing the reset.
		return data, nil
	}
	data.CurrentStreak = 0
	return data, []Event{{Kind: EventStreakReset}}
}
