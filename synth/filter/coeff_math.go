//go:build !fastmath

package filter

import "math"

// alphaFor derives the one-pole coefficient from cutoff and sample rate.
func alphaFor(cutoffHz, sampleRate float64) float64 {
	return math.Exp(-2 * math.Pi * cutoffHz / sampleRate)
}
