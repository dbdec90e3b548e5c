package workout

import (
	"fmt"
	"strconv"
	"strings"
)

// DistanceRule decides how much distance a single live measurement adds to a
// ride. The zero value is SpeedDistance.
type DistanceRule struct {
	fixed bool
	km    float64
}

// SpeedDistance treats each sample's speed reading as its distance delta.
func SpeedDistance() DistanceRule {
	return DistanceRule{}
}

// FixedDistance adds km for every sample regardless of its readings.
func FixedDistance(km float64) DistanceRule {
	return DistanceRule{fixed: true, km: km}
}

// Delta returns the distance contributed by m.
func (r DistanceRule) Delta(m Measurement) float64 {
	if r.fixed {
		return r.km
	}
	return m.Speed
}

// String returns the rule in the form accepted by ParseDistanceRule.
func (r DistanceRule) String() string {
	if r.fixed {
		return "fixed:" + strconv.FormatFloat(r.km, 'f', -1, 64)
	}
	return "speed"
}

// ParseDistanceRule parses "speed" or "fixed:<km>".
func ParseDistanceRule(value string) (DistanceRule, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "speed" {
		return SpeedDistance(), nil
	}
	raw, ok := strings.CutPrefix(value, "fixed:")
	if !ok {
		return DistanceRule{}, fmt.Errorf("unknown distance rule %q", value)
	}
	km, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return DistanceRule{}, fmt.Errorf("parse fixed distance %q: %w", raw, err)
	}
	if km < 0 {
		return DistanceRule{}, fmt.Errorf("fixed distance must not be negative, got %v", km)
	}
	return FixedDistance(km), nil
}

// MarshalText returns the String form.
func (r DistanceRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText lets DistanceRule be read directly from env config.
func (r *DistanceRule) UnmarshalText(text []byte) error {
	parsed, err := ParseDistanceRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Accumulator keeps a running total over a measurement stream. After each Add
// the returned summary equals Summarize over every measurement seen so far,
// with the distance grown by the accumulator's DistanceRule.
//
// An Accumulator belongs to a single call and is not safe for concurrent use.
type Accumulator struct {
	rule         DistanceRule
	distance     float64
	sum          total
	measurements []Measurement
}

// NewAccumulator returns an empty accumulator using rule for distance.
func NewAccumulator(rule DistanceRule) *Accumulator {
	return &Accumulator{rule: rule}
}

// Add absorbs m and returns the updated summary.
func (a *Accumulator) Add(m Measurement) Summary {
	a.sum = a.sum.add(m)
	a.distance += a.rule.Delta(m)
	a.measurements = append(a.measurements, m)
	return a.Summary()
}

// Summary returns the summary over every measurement absorbed so far. The
// caller may modify the returned measurements freely.
func (a *Accumulator) Summary() Summary {
	return summarizeTotal(a.distance, a.sum, a.measurements)
}

// Len returns the number of absorbed measurements.
func (a *Accumulator) Len() int {
	return len(a.measurements)
}

// Reset drops all absorbed measurements and distance.
func (a *Accumulator) Reset() {
	a.distance = 0
	a.sum = total{}
	a.measurements = nil
}
