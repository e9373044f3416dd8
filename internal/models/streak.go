// ABOUTME: StreakData record for consecutive-day workout streak tracking.
// ABOUTME: Single record per user; persisted as JSON in the key-value store.
package models

// StreakData holds the persistent state of the workout streak.
//
// LastWorkoutDate is the most recent day credited toward the streak.
// Freeze consumption may advance it synthetically, so it is not always
// a day on which a workout was actually logged.
type StreakData struct {
	CurrentStreak        int  `json:"currentStreak" yaml:"current_streak"`
	LongestStreak        int  `json:"longestStreak" yaml:"longest_streak"`
	LastWorkoutDate      *Day `json:"lastWorkoutDate" yaml:"last_workout_date"`
	StreakFreezes        int  `json:"streakFreezes" yaml:"streak_freezes"`
	LastFreezeEarnedDate *Day `json:"lastFreezeEarnedDate" yaml:"last_freeze_earned_date"`
}
