//go:build fastmath

package filter

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// alphaFor derives the one-pole coefficient from cutoff and sample rate
// using the fast exponential approximation.
func alphaFor(cutoffHz, sampleRate float64) float64 {
	return approx.FastExp(-2 * math.Pi * cutoffHz / sampleRate)
}
