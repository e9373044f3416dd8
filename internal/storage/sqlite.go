// ABOUTME: SQLite backend for fitness data storage.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitquest/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore wraps the SQLite database connection.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for optimal performance.
func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates or updates the database schema.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		exercise_type TEXT NOT NULL,
		workout_date TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		intensity TEXT NOT NULL,
		user_weight_kg REAL NOT NULL,
		calories_burned REAL NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		completed_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(workout_date DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_type ON workouts(exercise_type);
	CREATE INDEX IF NOT EXISTS idx_goals_completed ON goals(completed);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateWorkout stores a new workout in the database.
func (s *SQLiteStore) CreateWorkout(w *models.Workout) error {
	query := `
		INSERT INTO workouts (id, exercise_type, workout_date, duration_minutes, intensity, user_weight_kg, calories_burned, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		w.ID.String(),
		w.ExerciseType,
		w.Date.String(),
		w.DurationMinutes,
		string(w.Intensity),
		w.UserWeightKg,
		w.CaloriesBurned,
		w.Notes,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID or ID prefix.
func (s *SQLiteStore) GetWorkout(idOrPrefix string) (*models.Workout, error) {
	id, err := s.resolveID("workouts", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, exercise_type, workout_date, duration_minutes, intensity, user_weight_kg, calories_burned, notes, created_at
		FROM workouts
		WHERE id = ?
	`
	return scanWorkout(s.db.QueryRow(query, id))
}

// ListWorkouts retrieves workouts with optional filtering by exercise type.
// Results are sorted by workout date descending (most recent first).
func (s *SQLiteStore) ListWorkouts(exerciseType *string, limit int) ([]*models.Workout, error) {
	var query string
	var args []interface{}

	if exerciseType != nil {
		query = `
			SELECT id, exercise_type, workout_date, duration_minutes, intensity, user_weight_kg, calories_burned, notes, created_at
			FROM workouts
			WHERE LOWER(exercise_type) = LOWER(?)
			ORDER BY workout_date DESC, created_at DESC
		`
		args = append(args, *exerciseType)
	} else {
		query = `
			SELECT id, exercise_type, workout_date, duration_minutes, intensity, user_weight_kg, calories_burned, notes, created_at
			FROM workouts
			ORDER BY workout_date DESC, created_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkoutRows(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// DeleteWorkout removes a workout by ID or prefix.
func (s *SQLiteStore) DeleteWorkout(idOrPrefix string) error {
	id, err := s.resolveID("workouts", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	_, err = s.db.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// CreateGoal stores a new goal in the database.
func (s *SQLiteStore) CreateGoal(g *models.Goal) error {
	var completedAt *string
	if g.CompletedAt != nil {
		c := g.CompletedAt.Format(time.RFC3339)
		completedAt = &c
	}
	query := `
		INSERT INTO goals (id, title, difficulty, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		g.ID.String(),
		g.Title,
		string(g.Difficulty),
		boolToInt(g.Completed),
		g.CreatedAt.Format(time.RFC3339),
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoal retrieves a goal by ID or ID prefix.
func (s *SQLiteStore) GetGoal(idOrPrefix string) (*models.Goal, error) {
	id, err := s.resolveID("goals", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, difficulty, completed, created_at, completed_at
		FROM goals
		WHERE id = ?
	`
	return scanGoal(s.db.QueryRow(query, id))
}

// ListGoals retrieves goals, optionally filtered by completion state.
func (s *SQLiteStore) ListGoals(completed *bool) ([]*models.Goal, error) {
	var query string
	var args []interface{}

	if completed != nil {
		query = `
			SELECT id, title, difficulty, completed, created_at, completed_at
			FROM goals
			WHERE completed = ?
			ORDER BY created_at DESC
		`
		args = append(args, boolToInt(*completed))
	} else {
		query = `
			SELECT id, title, difficulty, completed, created_at, completed_at
			FROM goals
			ORDER BY created_at DESC
		`
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		g, err := scanGoalRows(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateGoal overwrites an existing goal record.
func (s *SQLiteStore) UpdateGoal(g *models.Goal) error {
	var completedAt *string
	if g.CompletedAt != nil {
		c := g.CompletedAt.Format(time.RFC3339)
		completedAt = &c
	}
	result, err := s.db.Exec(`
		UPDATE goals SET title = ?, difficulty = ?, completed = ?, completed_at = ?
		WHERE id = ?
	`, g.Title, string(g.Difficulty), boolToInt(g.Completed), completedAt, g.ID.String())
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update goal: %w", ErrNotFound)
	}
	return nil
}

// DeleteGoal removes a goal by ID or prefix.
func (s *SQLiteStore) DeleteGoal(idOrPrefix string) error {
	id, err := s.resolveID("goals", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	_, err = s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

// LoadStreak reads the persisted streak record from the state table.
func (s *SQLiteStore) LoadStreak() (models.StreakData, bool, error) {
	var data models.StreakData
	raw, found, err := s.getState(streakKey)
	if err != nil || !found {
		return data, false, err
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.StreakData{}, false, fmt.Errorf("decode streak: %w", err)
	}
	return data, true, nil
}

// SaveStreak persists the streak record.
func (s *SQLiteStore) SaveStreak(data models.StreakData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	if err := s.setState(streakKey, string(raw)); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

// DeleteStreak removes the persisted streak record.
func (s *SQLiteStore) DeleteStreak() error {
	if err := s.deleteState(streakKey); err != nil {
		return fmt.Errorf("delete streak: %w", err)
	}
	return nil
}

// LoadXP reads the persisted XP total.
func (s *SQLiteStore) LoadXP() (int, bool, error) {
	raw, found, err := s.getState(xpKey)
	if err != nil || !found {
		return 0, false, err
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("decode xp: %w", err)
	}
	return total, true, nil
}

// SaveXP persists the XP total.
func (s *SQLiteStore) SaveXP(total int) error {
	if err := s.setState(xpKey, strconv.Itoa(total)); err != nil {
		return fmt.Errorf("save xp: %w", err)
	}
	return nil
}

// DeleteXP removes the persisted XP total.
func (s *SQLiteStore) DeleteXP() error {
	if err := s.deleteState(xpKey); err != nil {
		return fmt.Errorf("delete xp: %w", err)
	}
	return nil
}

// Wipe removes all workout and goal records.
func (s *SQLiteStore) Wipe() error {
	for _, table := range []string{"workouts", "goals"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}

// GetAllData retrieves all data for export.
func (s *SQLiteStore) GetAllData() (*ExportData, error) {
	return collectExport(s)
}

// ImportData imports data from an export file.
func (s *SQLiteStore) ImportData(data *ExportData) error {
	return applyImport(s, data)
}

// getState reads a raw value from the state table.
func (s *SQLiteStore) getState(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state %s: %w", key, err)
	}
	return value, true, nil
}

// setState upserts a raw value in the state table.
func (s *SQLiteStore) setState(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// deleteState removes a key from the state table.
func (s *SQLiteStore) deleteState(key string) error {
	_, err := s.db.Exec("DELETE FROM state WHERE key = ?", key)
	return err
}

// resolveID finds the full ID from a prefix in the given table.
func (s *SQLiteStore) resolveID(table, idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := s.db.Query("SELECT id FROM "+table+" WHERE id LIKE ? || '%'", idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return matches[0], nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWorkout scans a single row into a Workout struct.
func scanWorkout(row *sql.Row) (*models.Workout, error) {
	w, err := scanWorkoutFrom(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return w, err
}

func scanWorkoutRows(rows *sql.Rows) (*models.Workout, error) {
	return scanWorkoutFrom(rows)
}

func scanWorkoutFrom(r rowScanner) (*models.Workout, error) {
	var w models.Workout
	var idStr, dateStr, intensity, createdAt string
	var notes sql.NullString

	err := r.Scan(&idStr, &w.ExerciseType, &dateStr, &w.DurationMinutes, &intensity, &w.UserWeightKg, &w.CaloriesBurned, &notes, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.ID, _ = uuid.Parse(idStr)
	w.Date, _ = models.ParseDay(dateStr)
	w.Intensity = models.Intensity(intensity)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		w.Notes = &notes.String
	}
	return &w, nil
}

// scanGoal scans a single row into a Goal struct.
func scanGoal(row *sql.Row) (*models.Goal, error) {
	g, err := scanGoalFrom(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return g, err
}

func scanGoalRows(rows *sql.Rows) (*models.Goal, error) {
	return scanGoalFrom(rows)
}

func scanGoalFrom(r rowScanner) (*models.Goal, error) {
	var g models.Goal
	var idStr, difficulty, createdAt string
	var completed int
	var completedAt sql.NullString

	err := r.Scan(&idStr, &g.Title, &difficulty, &completed, &createdAt, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan goal: %w", err)
	}

	g.ID, _ = uuid.Parse(idStr)
	g.Difficulty = models.Difficulty(difficulty)
	g.Completed = completed != 0
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if completedAt.Valid {
		t, _ := time.Parse(time.RFC3339, completedAt.String)
		g.CompletedAt = &t
	}
	return &g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Repository = (*SQLiteStore)(nil)
