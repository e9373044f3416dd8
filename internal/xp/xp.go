// ABOUTME: Experience point computation for workouts, goals, and milestones.
// ABOUTME: Milestone bonuses use before/after streak snapshots to avoid re-awards.
package xp

import (
	"math"

	"github.com/harperreed/fitquest/internal/models"
)

// Event identifies what earned the XP.
type Event string

const (
	EventLogWorkout          Event = "log_workout"
	EventCompleteGoal        Event = "complete_goal"
	EventCompleteDailyTarget Event = "complete_daily_target"
)

// Award amounts.
const (
	WorkoutXP     = 10
	GoalBaseXP    = 50
	DailyTargetXP = 5
)

// Milestone pairs a streak length threshold with its one-time bonus.
type Milestone struct {
	Days  int
	Bonus int
}

// Milestones lists streak thresholds in ascending order. Only the first
// threshold crossed by a single streak transition pays out.
var Milestones = []Milestone{
	{Days: 7, Bonus: 50},
	{Days: 14, Bonus: 100},
	{Days: 30, Bonus: 250},
	{Days: 60, Bonus: 500},
}

// AwardOptions carries the optional context for an award.
type AwardOptions struct {
	// Before/After streak snapshots, used by log_workout awards to detect
	// milestone crossings.
	Before *models.StreakData
	After  *models.StreakData

	// Multiplier scales goal-completion awards; zero means 1.
	Multiplier float64
}

// computeDelta returns the XP gained for one event, plus the milestone
// crossed if the transition passed a threshold.
func computeDelta(event Event, opts AwardOptions) (int, *Milestone) {
	switch event {
	case EventLogWorkout:
		delta := WorkoutXP
		if opts.Before != nil && opts.After != nil {
			if m, ok := crossedMilestone(opts.Before.CurrentStreak, opts.After.CurrentStreak); ok {
				return delta + m.Bonus, &m
			}
		}
		return delta, nil
	case EventCompleteGoal:
		mult := opts.Multiplier
		if mult == 0 {
			mult = 1
		}
		return int(math.Round(GoalBaseXP * mult)), nil
	case EventCompleteDailyTarget:
		return DailyTargetXP, nil
	}
	return 0, nil
}

// crossedMilestone finds the smallest threshold passed when the streak
// moved from before to after. Comparing snapshots rather than the absolute
// value prevents re-awarding a milestone the streak already holds, and a
// jump spanning several thresholds pays only the first.
func crossedMilestone(before, after int) (Milestone, bool) {
	for _, m := range Milestones {
		if before < m.Days && m.Days <= after {
			return m, true
		}
	}
	return Milestone{}, false
}

// Level returns the level for a total XP amount plus progress within it.
// Levels are 100 XP wide.
func Level(total int) (level, into, width int) {
	return total/100 + 1, total % 100, 100
}
