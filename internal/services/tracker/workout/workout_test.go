package workout

import (
	"math"
	"reflect"
	"testing"
)

func rideMeasurements() []Measurement {
	return []Measurement{
		{Speed: 29, Watts: 290, RPM: 90, HeartRate: 130},
		{Speed: 30, Watts: 300, RPM: 95, HeartRate: 140},
		{Speed: 31, Watts: 310, RPM: 100, HeartRate: 150},
	}
}

func TestSummarizeAveragesRide(t *testing.T) {
	summary := Summarize(53.5, rideMeasurements())

	if summary.Distance != 53.5 {
		t.Fatalf("distance = %v, want 53.5", summary.Distance)
	}
	if summary.AvgSpeed != 30.0 {
		t.Fatalf("avg speed = %v, want 30", summary.AvgSpeed)
	}
	if summary.AvgWatts != 300 {
		t.Fatalf("avg watts = %d, want 300", summary.AvgWatts)
	}
	if summary.AvgRPM != 95 {
		t.Fatalf("avg rpm = %d, want 95", summary.AvgRPM)
	}
	if summary.AvgHeartRate != 140 {
		t.Fatalf("avg heart rate = %d, want 140", summary.AvgHeartRate)
	}
	if summary.Persisted() {
		t.Fatal("expected summary without id")
	}
	if !reflect.DeepEqual(summary.Measurements, rideMeasurements()) {
		t.Fatalf("measurements = %+v, want input unchanged", summary.Measurements)
	}
}

func TestSummarizeEmptyKeepsDistance(t *testing.T) {
	summary := Summarize(12.25, nil)

	if summary.Distance != 12.25 {
		t.Fatalf("distance = %v, want 12.25", summary.Distance)
	}
	if summary.AvgSpeed != 0 || summary.AvgWatts != 0 || summary.AvgRPM != 0 || summary.AvgHeartRate != 0 {
		t.Fatalf("expected zero averages, got %+v", summary)
	}
	if summary.Measurements == nil || len(summary.Measurements) != 0 {
		t.Fatalf("expected empty measurement list, got %#v", summary.Measurements)
	}
}

func TestSummarizeTruncatesIntegerFields(t *testing.T) {
	summary := Summarize(0, []Measurement{
		{Speed: 10, Watts: 100, RPM: 80, HeartRate: 120},
		{Speed: 11, Watts: 101, RPM: 81, HeartRate: 121},
	})

	if summary.AvgSpeed != 10.5 {
		t.Fatalf("avg speed = %v, want 10.5", summary.AvgSpeed)
	}
	if summary.AvgWatts != 100 {
		t.Fatalf("avg watts = %d, want 100", summary.AvgWatts)
	}
	if summary.AvgRPM != 80 {
		t.Fatalf("avg rpm = %d, want 80", summary.AvgRPM)
	}
	if summary.AvgHeartRate != 120 {
		t.Fatalf("avg heart rate = %d, want 120", summary.AvgHeartRate)
	}
}

func TestSummarizeDoesNotAliasAppends(t *testing.T) {
	input := make([]Measurement, 1, 4)
	input[0] = Measurement{Watts: 200}

	summary := Summarize(0, input)
	_ = append(summary.Measurements, Measurement{Watts: 999})

	if got := input[:2][1].Watts; got != 0 {
		t.Fatalf("append through summary overwrote caller storage: %d", got)
	}
}

func TestSummarizeLargeValuesDoNotOverflow(t *testing.T) {
	half := Measurement{Watts: math.MaxInt32/2 + 10, RPM: math.MaxInt32, HeartRate: math.MinInt32}
	summary := Summarize(0, []Measurement{half, half})
	if summary.AvgWatts != math.MaxInt32/2+10 {
		t.Fatalf("avg watts = %d, want %d", summary.AvgWatts, int32(math.MaxInt32/2+10))
	}
	if summary.AvgRPM != math.MaxInt32 {
		t.Fatalf("avg rpm = %d, want %d", summary.AvgRPM, int32(math.MaxInt32))
	}
	if summary.AvgHeartRate != math.MinInt32 {
		t.Fatalf("avg heart rate = %d, want %d", summary.AvgHeartRate, int32(math.MinInt32))
	}

	acc := NewAccumulator(SpeedDistance())
	var live Summary
	for i := 0; i < 10; i++ {
		live = acc.Add(Measurement{Watts: 300_000_000})
	}
	if live.AvgWatts != 300_000_000 {
		t.Fatalf("accumulated avg watts = %d, want 300000000", live.AvgWatts)
	}
}

func TestMeasurementAddIsFieldWise(t *testing.T) {
	a := Measurement{Speed: 1.5, Watts: 10, RPM: 20, Resistance: 3, HeartRate: 100}
	b := Measurement{Speed: 2.5, Watts: 5, RPM: 1, Resistance: 4, HeartRate: 10}

	got := a.Add(b)
	want := Measurement{Speed: 4, Watts: 15, RPM: 21, Resistance: 7, HeartRate: 110}
	if got != want {
		t.Fatalf("sum = %+v, want %+v", got, want)
	}
	if b.Add(a) != want {
		t.Fatal("expected addition to be commutative")
	}
}
