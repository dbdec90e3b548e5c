package workout

import (
	"reflect"
	"testing"
)

func TestAccumulatorMatchesSummarizeOnEveryPrefix(t *testing.T) {
	measurements := []Measurement{
		{Speed: 29.3, Watts: 291, RPM: 91, Resistance: 5, HeartRate: 131},
		{Speed: 30.1, Watts: 302, RPM: 94, Resistance: 6, HeartRate: 142},
		{Speed: 31.7, Watts: 313, RPM: 99, Resistance: 7, HeartRate: 149},
		{Speed: 0.1, Watts: 0, RPM: 0, Resistance: 0, HeartRate: 100},
	}

	acc := NewAccumulator(SpeedDistance())
	distance := 0.0
	for n, m := range measurements {
		got := acc.Add(m)
		distance += m.Speed

		want := Summarize(distance, measurements[:n+1])
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("after %d measurements summary = %+v, want %+v", n+1, got, want)
		}
	}
	if acc.Len() != len(measurements) {
		t.Fatalf("len = %d, want %d", acc.Len(), len(measurements))
	}
}

func TestAccumulatorSpeedDistance(t *testing.T) {
	acc := NewAccumulator(SpeedDistance())

	var distances []float64
	for _, m := range rideMeasurements() {
		distances = append(distances, acc.Add(m).Distance)
	}

	want := []float64{29, 59, 90}
	if !reflect.DeepEqual(distances, want) {
		t.Fatalf("distances = %v, want %v", distances, want)
	}
}

func TestAccumulatorFixedDistance(t *testing.T) {
	acc := NewAccumulator(FixedDistance(1.5))
	for _, m := range rideMeasurements() {
		acc.Add(m)
	}
	if got := acc.Summary().Distance; got != 4.5 {
		t.Fatalf("distance = %v, want 4.5", got)
	}
}

func TestAccumulatorEarlierSummariesStayStable(t *testing.T) {
	acc := NewAccumulator(SpeedDistance())
	first := acc.Add(Measurement{Watts: 100})
	acc.Add(Measurement{Watts: 200})
	acc.Add(Measurement{Watts: 300})

	if len(first.Measurements) != 1 || first.Measurements[0].Watts != 100 {
		t.Fatalf("first summary changed: %+v", first.Measurements)
	}
	if first.AvgWatts != 100 {
		t.Fatalf("first avg watts = %d, want 100", first.AvgWatts)
	}
}

func TestAccumulatorSummaryIsIndependentCopy(t *testing.T) {
	acc := NewAccumulator(SpeedDistance())
	acc.Add(Measurement{Watts: 100})
	acc.Add(Measurement{Watts: 200})

	summary := acc.Summary()
	summary.Measurements[0].Watts = 999

	again := acc.Summary()
	if got := again.Measurements[0].Watts; got != 100 {
		t.Fatalf("stored first watts = %d, want 100", got)
	}
	next := acc.Add(Measurement{Watts: 300})
	if next.AvgWatts != 200 {
		t.Fatalf("avg watts = %d, want 200", next.AvgWatts)
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator(SpeedDistance())
	acc.Add(Measurement{Speed: 20, Watts: 100})
	acc.Reset()

	summary := acc.Summary()
	if summary.Distance != 0 || summary.AvgWatts != 0 || len(summary.Measurements) != 0 {
		t.Fatalf("expected empty summary after reset, got %+v", summary)
	}
}

func TestParseDistanceRule(t *testing.T) {
	tests := []struct {
		input   string
		want    DistanceRule
		wantErr bool
	}{
		{input: "", want: SpeedDistance()},
		{input: "speed", want: SpeedDistance()},
		{input: " SPEED ", want: SpeedDistance()},
		{input: "fixed:1.5", want: FixedDistance(1.5)},
		{input: "fixed: 2", want: FixedDistance(2)},
		{input: "fixed:-1", wantErr: true},
		{input: "fixed:abc", wantErr: true},
		{input: "odometer", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseDistanceRule(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDistanceRule(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDistanceRule(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDistanceRule(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDistanceRuleStringRoundTrips(t *testing.T) {
	for _, rule := range []DistanceRule{SpeedDistance(), FixedDistance(1.5)} {
		var parsed DistanceRule
		if err := parsed.UnmarshalText([]byte(rule.String())); err != nil {
			t.Fatalf("unmarshal %q: %v", rule.String(), err)
		}
		if parsed != rule {
			t.Fatalf("parsed %v, want %v", parsed, rule)
		}
	}
}
