//go:build !fastmath

package osc

import "math"

// wave is the sine primitive underlying every pitched shape.
func wave(x float64) float64 {
	return math.Sin(x)
}
