// Package cyclingtrackerv1 declares the cyclingtracker gRPC wire contract:
// message shapes, the CBOR codec that carries them, and the service
// descriptors and clients for CyclingTracker and SessionAuth.
//
// Field keys are small integers so the encoding stays compact and stable when
// fields are renamed.
package cyclingtrackerv1

import "strconv"

// StepType tags a step event or control step in a guided workout.
type StepType int32

const (
	StepType_STARTING    StepType = 0
	StepType_IN_PROGRESS StepType = 1
	StepType_ENDING      StepType = 2
)

var stepTypeNames = map[StepType]string{
	StepType_STARTING:    "STARTING",
	StepType_IN_PROGRESS: "IN_PROGRESS",
	StepType_ENDING:      "ENDING",
}

// String returns the enum name or the numeric code for unknown values.
func (t StepType) String() string {
	if name, ok := stepTypeNames[t]; ok {
		return name
	}
	return "STEP_TYPE(" + strconv.Itoa(int(t)) + ")"
}

// Measurement is one instantaneous sensor reading.
type Measurement struct {
	Speed      float64 `cbor:"1,keyasint,omitempty"`
	Watts      int32   `cbor:"2,keyasint,omitempty"`
	Rpm        int32   `cbor:"3,keyasint,omitempty"`
	Resistance int32   `cbor:"4,keyasint,omitempty"`
	Heartrate  int32   `cbor:"5,keyasint,omitempty"`
}

func (x *Measurement) GetSpeed() float64 {
	if x == nil {
		return 0
	}
	return x.Speed
}

func (x *Measurement) GetWatts() int32 {
	if x == nil {
		return 0
	}
	return x.Watts
}

func (x *Measurement) GetRpm() int32 {
	if x == nil {
		return 0
	}
	return x.Rpm
}

func (x *Measurement) GetResistance() int32 {
	if x == nil {
		return 0
	}
	return x.Resistance
}

func (x *Measurement) GetHeartrate() int32 {
	if x == nil {
		return 0
	}
	return x.Heartrate
}

// Workout is a finished ride uploaded in one request.
type Workout struct {
	KmRidden     float64        `cbor:"1,keyasint,omitempty"`
	Measurements []*Measurement `cbor:"2,keyasint,omitempty"`
}

func (x *Workout) GetKmRidden() float64 {
	if x == nil {
		return 0
	}
	return x.KmRidden
}

func (x *Workout) GetMeasurements() []*Measurement {
	if x == nil {
		return nil
	}
	return x.Measurements
}

// WorkoutSummary carries averaged statistics for a ride. Id is nil until the
// summary has been persisted.
type WorkoutSummary struct {
	Id           *int64         `cbor:"1,keyasint,omitempty"`
	KmRidden     float64        `cbor:"2,keyasint,omitempty"`
	AvgSpeed     float64        `cbor:"3,keyasint,omitempty"`
	AvgWatts     int32          `cbor:"4,keyasint,omitempty"`
	AvgRpm       int32          `cbor:"5,keyasint,omitempty"`
	AvgHeartrate int32          `cbor:"6,keyasint,omitempty"`
	Measurements []*Measurement `cbor:"7,keyasint,omitempty"`
}

func (x *WorkoutSummary) GetId() int64 {
	if x == nil || x.Id == nil {
		return 0
	}
	return *x.Id
}

// HasId reports whether the summary carries a persisted identifier.
func (x *WorkoutSummary) HasId() bool {
	return x != nil && x.Id != nil
}

func (x *WorkoutSummary) GetKmRidden() float64 {
	if x == nil {
		return 0
	}
	return x.KmRidden
}

func (x *WorkoutSummary) GetAvgSpeed() float64 {
	if x == nil {
		return 0
	}
	return x.AvgSpeed
}

func (x *WorkoutSummary) GetAvgWatts() int32 {
	if x == nil {
		return 0
	}
	return x.AvgWatts
}

func (x *WorkoutSummary) GetAvgRpm() int32 {
	if x == nil {
		return 0
	}
	return x.AvgRpm
}

func (x *WorkoutSummary) GetAvgHeartrate() int32 {
	if x == nil {
		return 0
	}
	return x.AvgHeartrate
}

func (x *WorkoutSummary) GetMeasurements() []*Measurement {
	if x == nil {
		return nil
	}
	return x.Measurements
}

// WorkoutRequest selects a persisted workout.
type WorkoutRequest struct {
	Id int64 `cbor:"1,keyasint,omitempty"`
}

func (x *WorkoutRequest) GetId() int64 {
	if x == nil {
		return 0
	}
	return x.Id
}

// PlanStep is one target-power interval of a workout plan.
type PlanStep struct {
	Watts    int32 `cbor:"1,keyasint,omitempty"`
	Duration int32 `cbor:"2,keyasint,omitempty"`
}

func (x *PlanStep) GetWatts() int32 {
	if x == nil {
		return 0
	}
	return x.Watts
}

func (x *PlanStep) GetDuration() int32 {
	if x == nil {
		return 0
	}
	return x.Duration
}

// WorkoutPlan is an ordered list of plan steps.
type WorkoutPlan struct {
	Steps []*PlanStep `cbor:"1,keyasint,omitempty"`
}

func (x *WorkoutPlan) GetSteps() []*PlanStep {
	if x == nil {
		return nil
	}
	return x.Steps
}

// WorkoutPlanToken identifies a stored workout plan.
type WorkoutPlanToken struct {
	WorkoutToken int64 `cbor:"1,keyasint,omitempty"`
}

func (x *WorkoutPlanToken) GetWorkoutToken() int64 {
	if x == nil {
		return 0
	}
	return x.WorkoutToken
}

// WorkoutStep is one inbound event of a guided workout. WorkoutToken selects
// a stored plan on STARTING; zero selects the default plan. Measurement is an
// optional reading taken at this step.
type WorkoutStep struct {
	Stype        StepType     `cbor:"1,keyasint,omitempty"`
	WorkoutToken int64        `cbor:"2,keyasint,omitempty"`
	Measurement  *Measurement `cbor:"3,keyasint,omitempty"`
}

func (x *WorkoutStep) GetStype() StepType {
	if x == nil {
		return StepType_STARTING
	}
	return x.Stype
}

func (x *WorkoutStep) GetWorkoutToken() int64 {
	if x == nil {
		return 0
	}
	return x.WorkoutToken
}

func (x *WorkoutStep) GetMeasurement() *Measurement {
	if x == nil {
		return nil
	}
	return x.Measurement
}

// ControlStep is one outbound resistance instruction. Resistance is set for
// STARTING and IN_PROGRESS; WorkoutSummaryId is set for ENDING.
type ControlStep struct {
	Stype            StepType `cbor:"1,keyasint,omitempty"`
	Resistance       *int32   `cbor:"2,keyasint,omitempty"`
	WorkoutSummaryId *int64   `cbor:"3,keyasint,omitempty"`
}

func (x *ControlStep) GetStype() StepType {
	if x == nil {
		return StepType_STARTING
	}
	return x.Stype
}

func (x *ControlStep) GetResistance() int32 {
	if x == nil || x.Resistance == nil {
		return 0
	}
	return *x.Resistance
}

// HasResistance reports whether a resistance target is present.
func (x *ControlStep) HasResistance() bool {
	return x != nil && x.Resistance != nil
}

func (x *ControlStep) GetWorkoutSummaryId() int64 {
	if x == nil || x.WorkoutSummaryId == nil {
		return 0
	}
	return *x.WorkoutSummaryId
}

// HasWorkoutSummaryId reports whether a summary identifier is present.
func (x *ControlStep) HasWorkoutSummaryId() bool {
	return x != nil && x.WorkoutSummaryId != nil
}

// Credentials carries a username and password for sign-up and login.
type Credentials struct {
	Username string `cbor:"1,keyasint,omitempty"`
	Password string `cbor:"2,keyasint,omitempty"`
}

func (x *Credentials) GetUsername() string {
	if x == nil {
		return ""
	}
	return x.Username
}

func (x *Credentials) GetPassword() string {
	if x == nil {
		return ""
	}
	return x.Password
}

// SignUpResult reports whether a user was created.
type SignUpResult struct {
	Result bool `cbor:"1,keyasint,omitempty"`
}

func (x *SignUpResult) GetResult() bool {
	if x == nil {
		return false
	}
	return x.Result
}

// SessionToken is the opaque credential returned by a successful login.
type SessionToken struct {
	Token string `cbor:"1,keyasint,omitempty"`
}

func (x *SessionToken) GetToken() string {
	if x == nil {
		return ""
	}
	return x.Token
}

// Int32 returns a pointer to v for optional message fields.
func Int32(v int32) *int32 { return &v }

// Int64 returns a pointer to v for optional message fields.
func Int64(v int64) *int64 { return &v }
