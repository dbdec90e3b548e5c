package tracker

import (
	cyclingtrackerv1 "github.com/louisbranch/cyclingtracker/api/cyclingtracker/v1"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/orchestrator"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/training"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
)

func measurementFromProto(in *cyclingtrackerv1.Measurement) workout.Measurement {
	return workout.Measurement{
		Speed:      in.GetSpeed(),
		Watts:      in.GetWatts(),
		RPM:        in.GetRpm(),
		Resistance: in.GetResistance(),
		HeartRate:  in.GetHeartrate(),
	}
}

func measurementsFromProto(in []*cyclingtrackerv1.Measurement) []workout.Measurement {
	out := make([]workout.Measurement, 0, len(in))
	for _, m := range in {
		out = append(out, measurementFromProto(m))
	}
	return out
}

func measurementToProto(m workout.Measurement) *cyclingtrackerv1.Measurement {
	return &cyclingtrackerv1.Measurement{
		Speed:      m.Speed,
		Watts:      m.Watts,
		Rpm:        m.RPM,
		Resistance: m.Resistance,
		Heartrate:  m.HeartRate,
	}
}

func summaryToProto(s workout.Summary) *cyclingtrackerv1.WorkoutSummary {
	out := &cyclingtrackerv1.WorkoutSummary{
		KmRidden:     s.Distance,
		AvgSpeed:     s.AvgSpeed,
		AvgWatts:     s.AvgWatts,
		AvgRpm:       s.AvgRPM,
		AvgHeartrate: s.AvgHeartRate,
		Measurements: make([]*cyclingtrackerv1.Measurement, 0, len(s.Measurements)),
	}
	if s.Persisted() {
		out.Id = cyclingtrackerv1.Int64(s.ID)
	}
	for _, m := range s.Measurements {
		out.Measurements = append(out.Measurements, measurementToProto(m))
	}
	return out
}

func planFromProto(in *cyclingtrackerv1.WorkoutPlan) training.Plan {
	plan := training.Plan{Steps: make([]training.Step, 0, len(in.GetSteps()))}
	for _, step := range in.GetSteps() {
		plan.Steps = append(plan.Steps, training.Step{Watts: step.GetWatts(), Duration: step.GetDuration()})
	}
	return plan
}

// stepEventFromProto rejects unknown step codes before they reach the cursor.
func stepEventFromProto(in *cyclingtrackerv1.WorkoutStep) (orchestrator.StepEvent, error) {
	stepType, err := training.ParseStepType(int32(in.GetStype()))
	if err != nil {
		return orchestrator.StepEvent{}, err
	}
	event := orchestrator.StepEvent{Type: stepType, PlanID: in.GetWorkoutToken()}
	if m := in.GetMeasurement(); m != nil {
		measurement := measurementFromProto(m)
		event.Measurement = &measurement
	}
	return event, nil
}

// controlStepToProto sets exactly one of resistance or summary id.
func controlStepToProto(step training.ControlStep) *cyclingtrackerv1.ControlStep {
	out := &cyclingtrackerv1.ControlStep{Stype: cyclingtrackerv1.StepType(step.Type)}
	if step.HasSummaryID() {
		out.WorkoutSummaryId = cyclingtrackerv1.Int64(step.SummaryID)
	} else {
		out.Resistance = cyclingtrackerv1.Int32(step.Resistance)
	}
	return out
}
