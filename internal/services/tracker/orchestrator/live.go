package orchestrator

import (
	"context"

	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
)

// LiveAverages folds one call's measurements into a running summary.
type LiveAverages struct {
	acc *workout.Accumulator
}

// NewLiveAverages returns an empty running summary using rule for distance.
func NewLiveAverages(rule workout.DistanceRule) *LiveAverages {
	return &LiveAverages{acc: workout.NewAccumulator(rule)}
}

// Handle absorbs m and returns the summary over every measurement so far.
func (l *LiveAverages) Handle(_ context.Context, m workout.Measurement) (workout.Summary, error) {
	return l.acc.Add(m), nil
}
