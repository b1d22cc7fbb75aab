package player

import "math"

// DefaultDayLength is the length of one day in time units.
const DefaultDayLength = 36.0

// Per-channel floors. Red has the widest range so it brightens and fades
// first; blue keeps the most light at night.
var lightFloors = [3]float32{0.15, 0.25, 0.40}

// Light returns the RGB light intensities for accumulated time t. Each
// channel stays within [floor, 1] for every input, including NaN and ±Inf.
func Light(t, dayLength float64) [3]float32 {
	if dayLength <= 0 || math.IsNaN(dayLength) || math.IsInf(dayLength, 0) {
		dayLength = DefaultDayLength
	}
	phase := math.Mod(t, dayLength) / dayLength
	if math.IsNaN(phase) {
		return lightFloors
	}
	v := float32(0.5 + math.Sin(2*math.Pi*phase))

	var out [3]float32
	for i, floor := range lightFloors {
		out[i] = min(max(v, floor), 1)
	}
	return out
}
