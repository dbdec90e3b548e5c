package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/louisbranch/cyclingtracker/internal/services/tracker/training"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
)

// PlanSource loads stored training plans.
type PlanSource interface {
	GetPlan(ctx context.Context, planID int64) (training.Plan, error)
}

// WorkoutSaver persists a finished session summary.
type WorkoutSaver interface {
	SaveWorkout(ctx context.Context, summary workout.Summary) (int64, error)
}

// StepEvent is one inbound event of a guided session.
type StepEvent struct {
	Type training.StepType
	// PlanID selects a stored plan on a starting event. Zero uses the
	// default plan.
	PlanID int64
	// Measurement is an optional reading taken with the event.
	Measurement *workout.Measurement
}

// GuidedSession holds the step cursor and session recording for one
// RunWorkout call.
type GuidedSession struct {
	plans    PlanSource
	workouts WorkoutSaver
	cursor   *training.Cursor
	recorded *workout.Accumulator
}

// NewGuidedSession returns a session with an idle cursor. plans may be nil,
// in which case every start uses the default plan.
func NewGuidedSession(plans PlanSource, workouts WorkoutSaver, rule workout.DistanceRule) *GuidedSession {
	return &GuidedSession{
		plans:    plans,
		workouts: workouts,
		cursor:   training.NewCursor(),
		recorded: workout.NewAccumulator(rule),
	}
}

// State returns the cursor state.
func (s *GuidedSession) State() training.State {
	return s.cursor.State()
}

// Handle applies one step event and returns the control step to send back.
func (s *GuidedSession) Handle(ctx context.Context, event StepEvent) (training.ControlStep, error) {
	if s.cursor.State() == training.StateEnded {
		return training.ControlStep{}, training.ErrSessionEnded
	}

	switch event.Type {
	case training.StepStarting:
		plan, err := s.loadPlan(ctx, event.PlanID)
		if err != nil {
			return training.ControlStep{}, err
		}
		s.recorded.Reset()
		s.record(event)
		return s.cursor.Start(plan)
	case training.StepInProgress:
		s.record(event)
		return s.cursor.Advance()
	case training.StepEnding:
		s.record(event)
		summaryID, err := s.finish(ctx)
		if err != nil {
			return training.ControlStep{}, err
		}
		return s.cursor.End(summaryID)
	default:
		_, err := training.ParseStepType(int32(event.Type))
		return training.ControlStep{}, err
	}
}

func (s *GuidedSession) record(event StepEvent) {
	if event.Measurement != nil {
		s.recorded.Add(*event.Measurement)
	}
}

func (s *GuidedSession) loadPlan(ctx context.Context, planID int64) (training.Plan, error) {
	if planID == 0 || s.plans == nil {
		return training.DefaultPlan(), nil
	}
	plan, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return training.Plan{}, fmt.Errorf("load plan %d: %w", planID, err)
	}
	return plan, nil
}

// finish persists the summary of everything recorded since the last start.
func (s *GuidedSession) finish(ctx context.Context) (int64, error) {
	if s.workouts == nil {
		return 0, fmt.Errorf("workout storage is not configured")
	}
	summary := s.recorded.Summary()
	summaryID, err := s.workouts.SaveWorkout(ctx, summary)
	if err != nil {
		return 0, fmt.Errorf("save session workout: %w", err)
	}
	log.Printf("guided session ended summary_id=%d measurements=%d", summaryID, len(summary.Measurements))
	return summaryID, nil
}
