package osc

import (
	"math"
	"testing"
)

func TestPitchOctaves(t *testing.T) {
	if got := Pitch(0); math.Abs(got-8) > 1e-12 {
		t.Fatalf("Pitch(0) = %v, want 8", got)
	}
	if got, want := Pitch(12), 2*Pitch(0); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Pitch(12) = %v, want %v", got, want)
	}
	if got, want := Pitch(-12), Pitch(0)/2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Pitch(-12) = %v, want %v", got, want)
	}
}

func TestPitchSemitoneRatio(t *testing.T) {
	for id := -24; id < 24; id++ {
		ratio := Pitch(id+1) / Pitch(id)
		if math.Abs(ratio-semitoneRatio) > 1e-12 {
			t.Fatalf("step %d: ratio = %v, want %v", id, ratio, semitoneRatio)
		}
	}
}

func TestSineSample(t *testing.T) {
	o, err := New(Sine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// 1 Hz sine: quarter period reaches +1, half period crosses zero.
	if got := o.Sample(0.25, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Sample(0.25, 1) = %v, want 1", got)
	}
	if got := o.Sample(0.5, 1); math.Abs(got) > 1e-9 {
		t.Fatalf("Sample(0.5, 1) = %v, want 0", got)
	}
}

func TestSquareIsSign(t *testing.T) {
	sq, err := New(Square)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	sn, err := New(Sine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 1; i < 200; i++ {
		tt := float64(i) / 997
		s := sn.Sample(tt, 110)
		q := sq.Sample(tt, 110)
		want := -1.0
		if s > 0 {
			want = 1.0
		}
		if q != want {
			t.Fatalf("t=%v: square = %v, want %v (sine %v)", tt, q, want, s)
		}
	}
}

func TestTriangleRange(t *testing.T) {
	o, err := New(Triangle)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 500; i++ {
		v := o.Sample(float64(i)/499, 7)
		if v < -1-1e-9 || v > 1+1e-9 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
	// Quarter period of a 1 Hz triangle is the +1 apex.
	if got := o.Sample(0.25, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("apex = %v, want 1", got)
	}
}

func TestSawDigitalSingularPoint(t *testing.T) {
	o, err := New(SawDigital)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := o.Sample(0, 440); got != 0 {
		t.Fatalf("Sample(0, 440) = %v, want 0", got)
	}
	if got := o.Sample(1e-6, 440); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Sample near zero not finite: %v", got)
	}
}

func TestSawAnalogPartialCount(t *testing.T) {
	few, err := New(SawAnalog, WithSawPartials(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	many, err := New(SawAnalog, WithSawPartials(100))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Two partials collapse to a scaled fundamental sine.
	sn, err := New(Sine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 1; i < 50; i++ {
		tt := float64(i) / 441
		want := sn.Sample(tt, 110) * 2 / math.Pi
		if got := few.Sample(tt, 110); math.Abs(got-want) > 1e-9 {
			t.Fatalf("t=%v: 2-partial saw = %v, want %v", tt, got, want)
		}
	}

	// More partials sharpen the ramp; output must stay finite.
	for i := 0; i < 200; i++ {
		v := many.Sample(float64(i)/9973, 110)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d not finite: %v", i, v)
		}
	}
}

func TestNoiseDeterministicPerSeed(t *testing.T) {
	a, err := New(Noise, WithSeed(42))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(Noise, WithSeed(42))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c, err := New(Noise, WithSeed(43))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	same := true
	for i := 0; i < 64; i++ {
		va, vb, vc := a.Sample(0, 0), b.Sample(0, 0), c.Sample(0, 0)
		if va != vb {
			t.Fatalf("draw %d: %v != %v for equal seeds", i, va, vb)
		}
		if va < -1 || va > 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
		if va != vc {
			same = false
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestVibratoZeroDepthMatchesPlain(t *testing.T) {
	plain, err := New(Sine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	vib, err := New(Sine, WithVibrato(5, 0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 100; i++ {
		tt := float64(i) / 883
		if plain.Sample(tt, 220) != vib.Sample(tt, 220) {
			t.Fatalf("t=%v: zero-depth vibrato altered output", tt)
		}
	}
}

func TestVibratoShiftsPhase(t *testing.T) {
	plain, err := New(Sine)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	vib, err := New(Sine, WithVibrato(5, 0.01))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	differs := false
	for i := 1; i < 100; i++ {
		tt := float64(i) / 883
		if plain.Sample(tt, 220) != vib.Sample(tt, 220) {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("expected vibrato to modulate the phase")
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		opts  []Option
	}{
		{"invalid shape", Shape(99), nil},
		{"negative vibrato rate", Sine, []Option{WithVibrato(-1, 0.1)}},
		{"nan vibrato depth", Sine, []Option{WithVibrato(5, math.NaN())}},
		{"too few saw partials", SawAnalog, []Option{WithSawPartials(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.shape, tc.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	want := map[Shape]string{
		Sine:       "sine",
		Triangle:   "triangle",
		Square:     "square",
		SawAnalog:  "saw_analog",
		SawDigital: "saw_digital",
		Noise:      "noise",
		Shape(99):  "unknown",
	}
	for s, name := range want {
		if s.String() != name {
			t.Fatalf("Shape(%d).String() = %q, want %q", s, s.String(), name)
		}
	}
}
