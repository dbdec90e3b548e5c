package workout

import "slices"

// Measurement is one instantaneous sensor reading.
type Measurement struct {
	Speed      float64
	Watts      int32
	RPM        int32
	Resistance int32
	HeartRate  int32
}

// Add returns the field-wise sum of m and other.
func (m Measurement) Add(other Measurement) Measurement {
	return Measurement{
		Speed:      m.Speed + other.Speed,
		Watts:      m.Watts + other.Watts,
		RPM:        m.RPM + other.RPM,
		Resistance: m.Resistance + other.Resistance,
		HeartRate:  m.HeartRate + other.HeartRate,
	}
}

// Summary holds averaged statistics for a ride.
//
// ID is zero until the summary has been persisted.
type Summary struct {
	ID           int64
	Distance     float64
	AvgSpeed     float64
	AvgWatts     int32
	AvgRPM       int32
	AvgHeartRate int32
	Measurements []Measurement
}

// Persisted reports whether a storage identifier has been attached.
func (s Summary) Persisted() bool {
	return s.ID != 0
}

// Summarize averages measurements into a summary for a ride of the given
// distance. An empty input yields zero averages with the distance preserved.
func Summarize(distance float64, measurements []Measurement) Summary {
	var sum total
	for _, m := range measurements {
		sum = sum.add(m)
	}
	return summarizeTotal(distance, sum, measurements)
}

// total is a field-wise running sum. Integer fields are int64 so that any
// sequence of int32 readings sums without wrapping.
type total struct {
	speed      float64
	watts      int64
	rpm        int64
	resistance int64
	heartRate  int64
}

func (t total) add(m Measurement) total {
	return total{
		speed:      t.speed + m.Speed,
		watts:      t.watts + int64(m.Watts),
		rpm:        t.rpm + int64(m.RPM),
		resistance: t.resistance + int64(m.Resistance),
		heartRate:  t.heartRate + int64(m.HeartRate),
	}
}

// summarizeTotal divides a running sum by the number of measurements it
// covers. Integer fields truncate toward zero; a mean of int32 values always
// fits back in int32. The returned summary owns a copy of measurements.
func summarizeTotal(distance float64, sum total, measurements []Measurement) Summary {
	count := len(measurements)
	if count == 0 {
		return Summary{Distance: distance, Measurements: []Measurement{}}
	}
	n := int64(count)
	return Summary{
		Distance:     distance,
		AvgSpeed:     sum.speed / float64(count),
		AvgWatts:     int32(sum.watts / n),
		AvgRPM:       int32(sum.rpm / n),
		AvgHeartRate: int32(sum.heartRate / n),
		Measurements: slices.Clone(measurements),
	}
}
