package osc

import "math"

// basePitchHz anchors scale step 0. The built-in instruments shift by whole
// octaves (multiples of 12 steps) into the audible range.
const basePitchHz = 8.0

var semitoneRatio = math.Pow(2, 1.0/12.0)

// Pitch returns the equal-tempered frequency of a scale step. Step 0 is the
// 8 Hz reference; every 12 steps double the frequency.
func Pitch(id int) float64 {
	return basePitchHz * math.Pow(semitoneRatio, float64(id))
}
