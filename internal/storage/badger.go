// ABOUTME: Badger key-value backend for fitness data storage.
// ABOUTME: Keys use type prefixes (workout:, goal:) plus fixed engine-state keys.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fitquest/internal/models"
)

const (
	workoutPrefix = "workout:"
	goalPrefix    = "goal:"
	streakKey     = "streak"
	xpKey         = "xp"
)

// BadgerStore is the default key-value storage backend.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database rooted at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// CreateWorkout stores a new workout.
func (s *BadgerStore) CreateWorkout(w *models.Workout) error {
	if err := s.setJSON(workoutPrefix+w.ID.String(), w); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID or ID prefix.
func (s *BadgerStore) GetWorkout(idOrPrefix string) (*models.Workout, error) {
	data, err := s.getByIDPrefix(workoutPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	var w models.Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode workout: %w", err)
	}
	return &w, nil
}

// ListWorkouts retrieves workouts with optional filtering by exercise type.
// Results are sorted by Date descending (most recent first).
func (s *BadgerStore) ListWorkouts(exerciseType *string, limit int) ([]*models.Workout, error) {
	values, err := s.listByPrefix(workoutPrefix)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	var workouts []*models.Workout
	for _, v := range values {
		var w models.Workout
		if err := json.Unmarshal(v, &w); err != nil {
			return nil, fmt.Errorf("decode workout: %w", err)
		}
		if exerciseType != nil && !strings.EqualFold(w.ExerciseType, *exerciseType) {
			continue
		}
		workouts = append(workouts, &w)
	}

	sort.Slice(workouts, func(i, j int) bool {
		if !workouts[i].Date.Equal(workouts[j].Date) {
			return workouts[j].Date.Before(workouts[i].Date)
		}
		return workouts[j].CreatedAt.Before(workouts[i].CreatedAt)
	})

	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts, nil
}

// DeleteWorkout removes a workout by ID or prefix.
func (s *BadgerStore) DeleteWorkout(idOrPrefix string) error {
	return s.deleteByIDPrefix(workoutPrefix, idOrPrefix)
}

// CreateGoal stores a new goal.
func (s *BadgerStore) CreateGoal(g *models.Goal) error {
	if err := s.setJSON(goalPrefix+g.ID.String(), g); err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoal retrieves a goal by ID or ID prefix.
func (s *BadgerStore) GetGoal(idOrPrefix string) (*models.Goal, error) {
	data, err := s.getByIDPrefix(goalPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	var g models.Goal
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode goal: %w", err)
	}
	return &g, nil
}

// ListGoals retrieves goals, optionally filtered by completion state.
// Results are sorted by CreatedAt descending.
func (s *BadgerStore) ListGoals(completed *bool) ([]*models.Goal, error) {
	values, err := s.listByPrefix(goalPrefix)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	var goals []*models.Goal
	for _, v := range values {
		var g models.Goal
		if err := json.Unmarshal(v, &g); err != nil {
			return nil, fmt.Errorf("decode goal: %w", err)
		}
		if completed != nil && g.Completed != *completed {
			continue
		}
		goals = append(goals, &g)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[j].CreatedAt.Before(goals[i].CreatedAt)
	})
	return goals, nil
}

// UpdateGoal overwrites an existing goal record.
func (s *BadgerStore) UpdateGoal(g *models.Goal) error {
	key := goalPrefix + g.ID.String()
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("update goal: %w", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if err := s.setJSON(key, g); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal by ID or prefix.
func (s *BadgerStore) DeleteGoal(idOrPrefix string) error {
	return s.deleteByIDPrefix(goalPrefix, idOrPrefix)
}

// LoadStreak reads the persisted streak record.
func (s *BadgerStore) LoadStreak() (models.StreakData, bool, error) {
	var data models.StreakData
	raw, err := s.get(streakKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return data, false, nil
	}
	if err != nil {
		return data, false, fmt.Errorf("load streak: %w", err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt state reads as absent; caller warns and starts fresh.
		return models.StreakData{}, false, fmt.Errorf("decode streak: %w", err)
	}
	return data, true, nil
}

// SaveStreak persists the streak record.
func (s *BadgerStore) SaveStreak(data models.StreakData) error {
	if err := s.setJSON(streakKey, data); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

// DeleteStreak removes the persisted streak record.
func (s *BadgerStore) DeleteStreak() error {
	if err := s.delete(streakKey); err != nil {
		return fmt.Errorf("delete streak: %w", err)
	}
	return nil
}

// LoadXP reads the persisted XP total.
func (s *BadgerStore) LoadXP() (int, bool, error) {
	raw, err := s.get(xpKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load xp: %w", err)
	}
	total, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false, fmt.Errorf("decode xp: %w", err)
	}
	return total, true, nil
}

// SaveXP persists the XP total.
func (s *BadgerStore) SaveXP(total int) error {
	if err := s.set(xpKey, []byte(strconv.Itoa(total))); err != nil {
		return fmt.Errorf("save xp: %w", err)
	}
	return nil
}

// DeleteXP removes the persisted XP total.
func (s *BadgerStore) DeleteXP() error {
	if err := s.delete(xpKey); err != nil {
		return fmt.Errorf("delete xp: %w", err)
	}
	return nil
}

// Wipe removes all workout and goal records.
func (s *BadgerStore) Wipe() error {
	for _, prefix := range []string{workoutPrefix, goalPrefix} {
		keys, err := s.keysByPrefix(prefix)
		if err != nil {
			return fmt.Errorf("wipe: %w", err)
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, k := range keys {
				if err := txn.Delete(k); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("wipe: %w", err)
		}
	}
	return nil
}

// GetAllData retrieves all data for export.
func (s *BadgerStore) GetAllData() (*ExportData, error) {
	return collectExport(s)
}

// ImportData imports data from an export file.
func (s *BadgerStore) ImportData(data *ExportData) error {
	return applyImport(s, data)
}

// set stores a raw value with the given key.
func (s *BadgerStore) set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// setJSON marshals v and stores it with the given key.
func (s *BadgerStore) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.set(key, data)
}

// get retrieves a raw value by exact key.
func (s *BadgerStore) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// delete removes a key; missing keys are not an error.
func (s *BadgerStore) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// keysByPrefix returns all keys matching the given prefix.
func (s *BadgerStore) keysByPrefix(prefix string) ([][]byte, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

// listByPrefix returns all values with keys matching the given prefix.
func (s *BadgerStore) listByPrefix(prefix string) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		return nil
	})
	return values, err
}

// getByIDPrefix retrieves a single value by ID prefix match.
// Returns an error if no match or multiple matches are found.
func (s *BadgerStore) getByIDPrefix(typePrefix, idPrefix string) ([]byte, error) {
	var matches [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(typePrefix + idPrefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			matches = append(matches, v)
			if len(matches) > 1 {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idPrefix)
	}
	return matches[0], nil
}

// deleteByIDPrefix deletes a record by ID prefix match.
func (s *BadgerStore) deleteByIDPrefix(typePrefix, idPrefix string) error {
	keys, err := s.keysByPrefix(typePrefix + idPrefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	}
	if len(keys) > 1 {
		return fmt.Errorf("ambiguous prefix %s: matches multiple records", idPrefix)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(keys[0])
	})
}

var _ Repository = (*BadgerStore)(nil)
