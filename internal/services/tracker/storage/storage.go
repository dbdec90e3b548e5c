// Package storage defines persistence contracts for workouts and plans.
package storage

import (
	"context"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/training"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// WorkoutStore persists workout summaries and their measurements.
type WorkoutStore interface {
	// SaveWorkout stores summary with its measurements and returns the new id.
	SaveWorkout(ctx context.Context, summary workout.Summary) (int64, error)
	// GetMeasurements returns a workout's measurements in recorded order.
	GetMeasurements(ctx context.Context, workoutID int64) ([]workout.Measurement, error)
}

// PlanStore persists workout plans.
type PlanStore interface {
	SavePlan(ctx context.Context, plan training.Plan) (int64, error)
	GetPlan(ctx context.Context, planID int64) (training.Plan, error)
}
