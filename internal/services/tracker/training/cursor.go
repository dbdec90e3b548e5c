package training

import (
	"fmt"
	"slices"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
)

// DefaultResistance is emitted once a plan has no steps left.
const DefaultResistance int32 = 0

// StepType tags inbound step events and outbound control steps.
type StepType int32

const (
	StepStarting   StepType = 0
	StepInProgress StepType = 1
	StepEnding     StepType = 2
)

// String returns a readable name for t.
func (t StepType) String() string {
	switch t {
	case StepStarting:
		return "starting"
	case StepInProgress:
		return "in_progress"
	case StepEnding:
		return "ending"
	default:
		return fmt.Sprintf("step_type(%d)", int32(t))
	}
}

// ParseStepType validates a raw step-type code from the wire.
func ParseStepType(code int32) (StepType, error) {
	t := StepType(code)
	switch t {
	case StepStarting, StepInProgress, StepEnding:
		return t, nil
	}
	return 0, apperrors.WithMetadata(apperrors.CodeStepTypeInvalid,
		fmt.Sprintf("unknown step type %d", code),
		map[string]string{"step_type": fmt.Sprint(code)})
}

// ControlStep is an instruction sent back to the trainer. Resistance is only
// meaningful for starting and in-progress steps; SummaryID only for ending.
type ControlStep struct {
	Type       StepType
	Resistance int32
	SummaryID  int64
}

// HasResistance reports whether the step carries a resistance target.
func (c ControlStep) HasResistance() bool {
	return c.Type != StepEnding
}

// HasSummaryID reports whether the step carries a workout summary id.
func (c ControlStep) HasSummaryID() bool {
	return c.Type == StepEnding
}

// State is the lifecycle position of a Cursor.
type State int

const (
	StateIdle State = iota
	StateStarted
	StateAdvancing
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarted:
		return "started"
	case StateAdvancing:
		return "advancing"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrSessionEnded is returned for any event after the session has ended.
var ErrSessionEnded = apperrors.New(apperrors.CodeTrainingSessionEnded, "training session already ended")

// Cursor walks the steps of one plan front to back. It is owned by a single
// streaming call and is not safe for concurrent use.
type Cursor struct {
	state State
	steps []Step
}

// NewCursor returns an idle cursor with no plan loaded.
func NewCursor() *Cursor {
	return &Cursor{}
}

// State returns the current lifecycle state.
func (c *Cursor) State() State {
	return c.state
}

// Remaining returns the number of steps not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.steps)
}

// Start loads plan, replacing any steps left from an earlier start, and
// consumes its first step.
func (c *Cursor) Start(plan Plan) (ControlStep, error) {
	if c.state == StateEnded {
		return ControlStep{}, ErrSessionEnded
	}
	c.steps = slices.Clone(plan.Steps)
	c.state = StateStarted
	return ControlStep{Type: StepStarting, Resistance: c.next()}, nil
}

// Advance consumes the next step. An idle cursor advances over an empty
// plan.
func (c *Cursor) Advance() (ControlStep, error) {
	if c.state == StateEnded {
		return ControlStep{}, ErrSessionEnded
	}
	c.state = StateAdvancing
	return ControlStep{Type: StepInProgress, Resistance: c.next()}, nil
}

// End finishes the session with the persisted summary id.
func (c *Cursor) End(summaryID int64) (ControlStep, error) {
	if c.state == StateEnded {
		return ControlStep{}, ErrSessionEnded
	}
	c.state = StateEnded
	c.steps = nil
	return ControlStep{Type: StepEnding, SummaryID: summaryID}, nil
}

// next pops the front step and returns its watts, or DefaultResistance when
// the plan is exhausted.
func (c *Cursor) next() int32 {
	if len(c.steps) == 0 {
		return DefaultResistance
	}
	step := c.steps[0]
	c.steps = c.steps[1:]
	return step.Watts
}
