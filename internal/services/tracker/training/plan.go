// Package training models workout plans and the per-call step cursor that
// walks a plan during a guided session.
package training

import (
	"fmt"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
)

// Step is one target-power interval.
type Step struct {
	Watts    int32
	Duration int32
}

// Plan is an ordered list of steps.
type Plan struct {
	Steps []Step
}

// DefaultPlan returns the plan used when a session does not reference a
// stored one.
func DefaultPlan() Plan {
	return Plan{Steps: []Step{
		{Watts: 150, Duration: 2},
		{Watts: 200, Duration: 2},
	}}
}

// Validate rejects plans that a cursor could not meaningfully walk.
func (p Plan) Validate() error {
	if len(p.Steps) == 0 {
		return apperrors.New(apperrors.CodePlanInvalid, "workout plan requires at least one step")
	}
	for i, step := range p.Steps {
		if step.Watts < 0 {
			return apperrors.WithMetadata(apperrors.CodePlanInvalid,
				fmt.Sprintf("step %d watts must not be negative", i),
				map[string]string{"step": fmt.Sprint(i)})
		}
		if step.Duration <= 0 {
			return apperrors.WithMetadata(apperrors.CodePlanInvalid,
				fmt.Sprintf("step %d duration must be positive", i),
				map[string]string{"step": fmt.Sprint(i)})
		}
	}
	return nil
}
