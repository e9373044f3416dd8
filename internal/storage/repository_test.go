// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Runs the same CRUD and state suite against Badger and SQLite.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fitquest/internal/models"
)

// forEachBackend runs the test against every Repository implementation.
func forEachBackend(t *testing.T, fn func(t *testing.T, repo Repository)) {
	t.Helper()

	backends := []struct {
		name string
		open func(t *testing.T) Repository
	}{
		{"badger", func(t *testing.T) Repository {
			repo, err := OpenBadger(t.TempDir())
			if err != nil {
				t.Fatalf("OpenBadger failed: %v", err)
			}
			return repo
		}},
		{"sqlite", func(t *testing.T) Repository {
			repo, err := OpenSQLite(filepath.Join(t.TempDir(), "fitquest.db"))
			if err != nil {
				t.Fatalf("OpenSQLite failed: %v", err)
			}
			return repo
		}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			defer repo.Close()
			fn(t, repo)
		})
	}
}

func testWorkout(date models.Day) *models.Workout {
	w := models.NewWorkout("run", date, 30, models.IntensityMedium, 80)
	w.WithCalories(240)
	return w
}

func TestCreateAndGetWorkout(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		w.WithNotes("morning run")

		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		got, err := repo.GetWorkout(w.ID.String())
		if err != nil {
			t.Fatalf("GetWorkout failed: %v", err)
		}

		if got.ID != w.ID {
			t.Errorf("ID mismatch: got %v, want %v", got.ID, w.ID)
		}
		if got.ExerciseType != "run" {
			t.Errorf("ExerciseType = %s, want run", got.ExerciseType)
		}
		if !got.Date.Equal(w.Date) {
			t.Errorf("Date = %v, want %v", got.Date, w.Date)
		}
		if got.Intensity != models.IntensityMedium {
			t.Errorf("Intensity = %s, want medium", got.Intensity)
		}
		if got.CaloriesBurned != 240 {
			t.Errorf("CaloriesBurned = %v, want 240", got.CaloriesBurned)
		}
		if got.Notes == nil || *got.Notes != "morning run" {
			t.Errorf("Notes = %v, want 'morning run'", got.Notes)
		}
	})
}

func TestGetWorkoutByPrefix(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		got, err := repo.GetWorkout(w.ID.String()[:8])
		if err != nil {
			t.Fatalf("GetWorkout by prefix failed: %v", err)
		}
		if got.ID != w.ID {
			t.Errorf("ID mismatch: got %v, want %v", got.ID, w.ID)
		}

		if _, err := repo.GetWorkout("zzzzzzzz"); err == nil {
			t.Error("expected error for unknown prefix")
		}
	})
}

func TestListWorkouts(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		base := models.NewDay(2026, time.August, 20)
		w1 := testWorkout(base)
		w2 := testWorkout(base.AddDays(1))
		w3 := models.NewWorkout("lift", base.AddDays(2), 45, models.IntensityHigh, 80)

		for _, w := range []*models.Workout{w1, w2, w3} {
			if err := repo.CreateWorkout(w); err != nil {
				t.Fatalf("CreateWorkout failed: %v", err)
			}
		}

		all, err := repo.ListWorkouts(nil, 0)
		if err != nil {
			t.Fatalf("ListWorkouts failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 workouts, got %d", len(all))
		}
		if all[0].ID != w3.ID {
			t.Errorf("expected most recent first, got %v", all[0].ID)
		}

		runType := "run"
		runs, err := repo.ListWorkouts(&runType, 0)
		if err != nil {
			t.Fatalf("ListWorkouts with type failed: %v", err)
		}
		if len(runs) != 2 {
			t.Errorf("expected 2 runs, got %d", len(runs))
		}

		limited, err := repo.ListWorkouts(nil, 2)
		if err != nil {
			t.Fatalf("ListWorkouts with limit failed: %v", err)
		}
		if len(limited) != 2 {
			t.Errorf("expected 2 workouts with limit, got %d", len(limited))
		}
	})
}

func TestDeleteWorkout(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		if err := repo.DeleteWorkout(w.ID.String()[:8]); err != nil {
			t.Fatalf("DeleteWorkout failed: %v", err)
		}

		if _, err := repo.GetWorkout(w.ID.String()); err == nil {
			t.Error("expected error getting deleted workout")
		}

		if err := repo.DeleteWorkout("zzzzzzzz"); err == nil {
			t.Error("expected error deleting unknown workout")
		}
	})
}

func TestGoalCRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		g := models.NewGoal("Run a 10k", models.DifficultyHard)
		if err := repo.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}

		got, err := repo.GetGoal(g.ID.String()[:8])
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if got.Title != "Run a 10k" || got.Difficulty != models.DifficultyHard {
			t.Errorf("got %+v", got)
		}
		if got.Completed {
			t.Error("new goal must not be completed")
		}

		got.Complete(time.Now())
		if err := repo.UpdateGoal(got); err != nil {
			t.Fatalf("UpdateGoal failed: %v", err)
		}

		done := true
		completed, err := repo.ListGoals(&done)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(completed) != 1 || !completed[0].Completed || completed[0].CompletedAt == nil {
			t.Errorf("completed goals = %+v", completed)
		}

		open := false
		openGoals, err := repo.ListGoals(&open)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(openGoals) != 0 {
			t.Errorf("expected no open goals, got %d", len(openGoals))
		}

		if err := repo.DeleteGoal(g.ID.String()); err != nil {
			t.Fatalf("DeleteGoal failed: %v", err)
		}
		if _, err := repo.GetGoal(g.ID.String()); err == nil {
			t.Error("expected error getting deleted goal")
		}
	})
}

func TestUpdateMissingGoal(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		g := models.NewGoal("Phantom", models.DifficultyEasy)
		if err := repo.UpdateGoal(g); err == nil {
			t.Error("expected error updating missing goal")
		}
	})
}

func TestStreakStateRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		_, found, err := repo.LoadStreak()
		if err != nil {
			t.Fatalf("LoadStreak failed: %v", err)
		}
		if found {
			t.Fatal("expected no streak state initially")
		}

		last := models.NewDay(2026, time.August, 25)
		earned := models.NewDay(2026, time.August, 24)
		want := models.StreakData{
			CurrentStreak:        7,
			LongestStreak:        9,
			LastWorkoutDate:      &last,
			StreakFreezes:        2,
			LastFreezeEarnedDate: &earned,
		}

		if err := repo.SaveStreak(want); err != nil {
			t.Fatalf("SaveStreak failed: %v", err)
		}

		got, found, err := repo.LoadStreak()
		if err != nil || !found {
			t.Fatalf("LoadStreak: found=%v err=%v", found, err)
		}
		if got.CurrentStreak != 7 || got.LongestStreak != 9 || got.StreakFreezes != 2 {
			t.Errorf("got %+v", got)
		}
		if got.LastWorkoutDate == nil || !got.LastWorkoutDate.Equal(last) {
			t.Errorf("LastWorkoutDate = %v, want %v", got.LastWorkoutDate, last)
		}
		if got.LastFreezeEarnedDate == nil || !got.LastFreezeEarnedDate.Equal(earned) {
			t.Errorf("LastFreezeEarnedDate = %v, want %v", got.LastFreezeEarnedDate, earned)
		}

		if err := repo.DeleteStreak(); err != nil {
			t.Fatalf("DeleteStreak failed: %v", err)
		}
		_, found, err = repo.LoadStreak()
		if err != nil {
			t.Fatalf("LoadStreak failed: %v", err)
		}
		if found {
			t.Error("expected streak state deleted")
		}
	})
}

func TestXPStateRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		_, found, err := repo.LoadXP()
		if err != nil {
			t.Fatalf("LoadXP failed: %v", err)
		}
		if found {
			t.Fatal("expected no xp state initially")
		}

		if err := repo.SaveXP(1234); err != nil {
			t.Fatalf("SaveXP failed: %v", err)
		}

		total, found, err := repo.LoadXP()
		if err != nil || !found {
			t.Fatalf("LoadXP: found=%v err=%v", found, err)
		}
		if total != 1234 {
			t.Errorf("total = %d, want 1234", total)
		}

		if err := repo.DeleteXP(); err != nil {
			t.Fatalf("DeleteXP failed: %v", err)
		}
		_, found, err = repo.LoadXP()
		if err != nil {
			t.Fatalf("LoadXP failed: %v", err)
		}
		if found {
			t.Error("expected xp state deleted")
		}
	})
}

func TestWipeClearsCollectionsOnly(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		g := models.NewGoal("Stretch", models.DifficultyEasy)
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
		if err := repo.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
		if err := repo.SaveXP(50); err != nil {
			t.Fatalf("SaveXP failed: %v", err)
		}

		if err := repo.Wipe(); err != nil {
			t.Fatalf("Wipe failed: %v", err)
		}

		workouts, err := repo.ListWorkouts(nil, 0)
		if err != nil {
			t.Fatalf("ListWorkouts failed: %v", err)
		}
		if len(workouts) != 0 {
			t.Errorf("expected no workouts, got %d", len(workouts))
		}

		goals, err := repo.ListGoals(nil)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("expected no goals, got %d", len(goals))
		}

		total, found, err := repo.LoadXP()
		if err != nil || !found || total != 50 {
			t.Errorf("engine state must survive Wipe: total=%d found=%v err=%v", total, found, err)
		}
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		g := models.NewGoal("Run a 10k", models.DifficultyMedium)
		last := models.NewDay(2026, time.August, 25)
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
		if err := repo.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
		if err := repo.SaveStreak(models.StreakData{CurrentStreak: 3, LongestStreak: 5, LastWorkoutDate: &last}); err != nil {
			t.Fatalf("SaveStreak failed: %v", err)
		}
		if err := repo.SaveXP(230); err != nil {
			t.Fatalf("SaveXP failed: %v", err)
		}

		raw, err := ExportJSON(repo)
		if err != nil {
			t.Fatalf("ExportJSON failed: %v", err)
		}

		fresh, err := OpenBadger(t.TempDir())
		if err != nil {
			t.Fatalf("OpenBadger failed: %v", err)
		}
		defer fresh.Close()

		if err := ImportJSON(fresh, raw); err != nil {
			t.Fatalf("ImportJSON failed: %v", err)
		}

		workouts, err := fresh.ListWorkouts(nil, 0)
		if err != nil || len(workouts) != 1 {
			t.Fatalf("imported workouts = %d, err = %v", len(workouts), err)
		}
		if workouts[0].ID != w.ID {
			t.Errorf("workout ID = %v, want %v", workouts[0].ID, w.ID)
		}

		streakData, found, err := fresh.LoadStreak()
		if err != nil || !found {
			t.Fatalf("LoadStreak: found=%v err=%v", found, err)
		}
		if streakData.CurrentStreak != 3 || streakData.LongestStreak != 5 {
			t.Errorf("streak = %+v", streakData)
		}

		total, found, err := fresh.LoadXP()
		if err != nil || !found || total != 230 {
			t.Errorf("xp = %d found=%v err=%v, want 230", total, found, err)
		}
	})
}

func TestExportYAML(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		w := testWorkout(models.NewDay(2026, time.August, 25))
		if err := repo.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}

		raw, err := ExportYAML(repo)
		if err != nil {
			t.Fatalf("ExportYAML failed: %v", err)
		}
		if len(raw) == 0 {
			t.Error("expected non-empty YAML export")
		}
	})
}

func TestCorruptStreakStateReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	repo, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer repo.Close()

	if err := repo.set(streakKey, []byte("not json")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	data, found, err := repo.LoadStreak()
	if err == nil {
		t.Error("expected decode error for corrupt state")
	}
	if found {
		t.Error("corrupt state must read as absent")
	}
	if data.CurrentStreak != 0 {
		t.Errorf("expected zero default, got %+v", data)
	}
}
