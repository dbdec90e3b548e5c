package training

import (
	"testing"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
)

func TestDefaultPlanIsValid(t *testing.T) {
	if err := DefaultPlan().Validate(); err != nil {
		t.Fatalf("validate default plan: %v", err)
	}
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
	}{
		{name: "empty", plan: Plan{}},
		{name: "negative watts", plan: Plan{Steps: []Step{{Watts: -1, Duration: 1}}}},
		{name: "zero duration", plan: Plan{Steps: []Step{{Watts: 100, Duration: 0}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.plan.Validate()
			if apperrors.GetCode(err) != apperrors.CodePlanInvalid {
				t.Fatalf("code = %v, want %v", apperrors.GetCode(err), apperrors.CodePlanInvalid)
			}
		})
	}
}
