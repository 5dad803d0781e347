//go:build fastmath

package osc

import "math"

// wave approximates sin(x) with a low-order polynomial on the wrapped unit
// phase. Cheaper than math.Sin at reduced precision; peak error is on the
// order of 1e-3 of full scale.
func wave(x float64) float64 {
	x *= 0.15915
	x -= math.Trunc(x)
	return 20.875 * x * (x - 0.5) * (x - 1.0)
}
