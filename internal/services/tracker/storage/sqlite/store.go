// Package sqlite implements tracker persistence over SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/cyclingtracker/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/storage"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/storage/sqlite/migrations"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/training"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
	_ "modernc.org/sqlite"
)

// Store implements workout and plan persistence over SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a tracker SQLite store and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveWorkout stores the summary row and its measurements in one transaction.
func (s *Store) SaveWorkout(ctx context.Context, summary workout.Summary) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save workout: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
INSERT INTO workout_summaries (km_ridden, avg_speed, avg_watts, avg_rpm, avg_heartrate, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		summary.Distance,
		summary.AvgSpeed,
		summary.AvgWatts,
		summary.AvgRPM,
		summary.AvgHeartRate,
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert workout summary: %w", err)
	}
	workoutID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout summary id: %w", err)
	}

	for seq, m := range summary.Measurements {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO measurements (workout_id, seq, speed, watts, rpm, resistance, heartrate)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			workoutID, seq, m.Speed, m.Watts, m.RPM, m.Resistance, m.HeartRate,
		); err != nil {
			return 0, fmt.Errorf("insert measurement %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save workout: %w", err)
	}
	return workoutID, nil
}

// GetMeasurements returns the measurements of a stored workout in the order
// they were recorded.
func (s *Store) GetMeasurements(ctx context.Context, workoutID int64) ([]workout.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	if err := s.requireRow(ctx, "SELECT 1 FROM workout_summaries WHERE id = ?", workoutID); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT speed, watts, rpm, resistance, heartrate
FROM measurements
WHERE workout_id = ?
ORDER BY seq`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	measurements := []workout.Measurement{}
	for rows.Next() {
		var m workout.Measurement
		if err := rows.Scan(&m.Speed, &m.Watts, &m.RPM, &m.Resistance, &m.HeartRate); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	return measurements, nil
}

// SavePlan stores plan steps in order and returns the plan id.
func (s *Store) SavePlan(ctx context.Context, plan training.Plan) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save plan: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "INSERT INTO workout_plans (created_at) VALUES (?)", s.now().UTC().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("insert workout plan: %w", err)
	}
	planID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout plan id: %w", err)
	}
	for seq, step := range plan.Steps {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO workout_plan_steps (plan_id, seq, watts, duration) VALUES (?, ?, ?, ?)",
			planID, seq, step.Watts, step.Duration,
		); err != nil {
			return 0, fmt.Errorf("insert plan step %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save plan: %w", err)
	}
	return planID, nil
}

// GetPlan loads a stored plan.
func (s *Store) GetPlan(ctx context.Context, planID int64) (training.Plan, error) {
	if err := ctx.Err(); err != nil {
		return training.Plan{}, err
	}
	if s == nil || s.sqlDB == nil {
		return training.Plan{}, fmt.Errorf("storage is not configured")
	}

	if err := s.requireRow(ctx, "SELECT 1 FROM workout_plans WHERE id = ?", planID); err != nil {
		return training.Plan{}, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT watts, duration FROM workout_plan_steps WHERE plan_id = ? ORDER BY seq", planID)
	if err != nil {
		return training.Plan{}, fmt.Errorf("query plan steps: %w", err)
	}
	defer rows.Close()

	var plan training.Plan
	for rows.Next() {
		var step training.Step
		if err := rows.Scan(&step.Watts, &step.Duration); err != nil {
			return training.Plan{}, fmt.Errorf("scan plan step: %w", err)
		}
		plan.Steps = append(plan.Steps, step)
	}
	if err := rows.Err(); err != nil {
		return training.Plan{}, fmt.Errorf("query plan steps: %w", err)
	}
	return plan, nil
}

func (s *Store) requireRow(ctx context.Context, query string, id int64) error {
	var found int
	err := s.sqlDB.QueryRowContext(ctx, query, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup record %d: %w", id, err)
	}
	return nil
}

var (
	_ storage.WorkoutStore = (*Store)(nil)
	_ storage.PlanStore    = (*Store)(nil)
)
