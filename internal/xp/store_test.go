// ABOUTME: Tests for the XP Store over real storage.
// ABOUTME: Verifies persistence, milestone notifications, and reset.
package xp

import (
	"testing"

	"github.com/harperreed/fitquest/internal/notify"
	"github.com/harperreed/fitquest/internal/storage"
)

func setupStore(t *testing.T) (*Store, storage.Repository, *notify.Recorder) {
	t.Helper()
	repo, err := storage.OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	rec := &notify.Recorder{}
	return NewStore(repo, rec), repo, rec
}

func TestStoreLoadDefaultsToZero(t *testing.T) {
	store, _, _ := setupStore(t)

	if total := store.Load(); total != 0 {
		t.Errorf("Load = %d, want 0", total)
	}
}

func TestStoreAwardPersists(t *testing.T) {
	store, repo, _ := setupStore(t)

	total := store.Award(0, EventLogWorkout, AwardOptions{})
	if total != WorkoutXP {
		t.Fatalf("total = %d, want %d", total, WorkoutXP)
	}

	saved, found, err := repo.LoadXP()
	if err != nil || !found {
		t.Fatalf("LoadXP: found=%v err=%v", found, err)
	}
	if saved != WorkoutXP {
		t.Errorf("persisted total = %d, want %d", saved, WorkoutXP)
	}

	if store.Load() != WorkoutXP {
		t.Errorf("Load after award = %d, want %d", store.Load(), WorkoutXP)
	}
}

func TestStoreAwardMilestoneNotifies(t *testing.T) {
	store, _, rec := setupStore(t)

	total := store.Award(60, EventLogWorkout, snapshots(6, 7))

	if total != 60+WorkoutXP+50 {
		t.Errorf("total = %d, want %d", total, 60+WorkoutXP+50)
	}
	if !rec.Has("milestone") {
		t.Errorf("expected a milestone notification, got %v", rec.Entries)
	}
}

func TestStoreAwardGoalNotifies(t *testing.T) {
	store, _, rec := setupStore(t)

	total := store.Award(0, EventCompleteGoal, AwardOptions{Multiplier: 2})

	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if !rec.Has("goal complete") {
		t.Errorf("expected a goal completion notification, got %v", rec.Entries)
	}
}

func TestStoreResetClearsTotal(t *testing.T) {
	store, repo, _ := setupStore(t)

	store.Award(0, EventLogWorkout, AwardOptions{})

	total, err := store.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Reset = %d, want 0", total)
	}

	_, found, err := repo.LoadXP()
	if err != nil {
		t.Fatalf("LoadXP failed: %v", err)
	}
	if found {
		t.Error("expected xp state deleted after reset")
	}
	if store.Load() != 0 {
		t.Errorf("Load after reset = %d, want 0", store.Load())
	}
}
