package osc_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/osc"
)

func ExampleOscillator_Sample() {
	o, err := osc.New(osc.Sine)
	if err != nil {
		panic(err)
	}

	// One hertz: quarter, half, and three-quarter period.
	fmt.Printf("%.0f %.0f %.0f\n", o.Sample(0.25, 1), o.Sample(0.5, 1), o.Sample(0.75, 1))

	// Output:
	// 1 0 -1
}

func ExamplePitch() {
	fmt.Printf("%.0f %.0f %.0f\n", osc.Pitch(0), osc.Pitch(12), osc.Pitch(24))

	// Output:
	// 8 16 32
}
