package osc

import (
	"fmt"
	"testing"
)

func BenchmarkSampleSine(b *testing.B) {
	o, err := New(Sine, WithVibrato(5, 0.001))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = o.Sample(float64(i)/44100, 220)
	}
}

func BenchmarkSampleSawAnalog(b *testing.B) {
	for _, partials := range []int{10, 50, 100} {
		b.Run(fmt.Sprintf("partials%d", partials), func(b *testing.B) {
			o, err := New(SawAnalog, WithSawPartials(partials))
			if err != nil {
				b.Fatalf("New() error = %v", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = o.Sample(float64(i)/44100, 220)
			}
		})
	}
}
