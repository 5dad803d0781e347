package osc

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	defaultSawPartials = 50
	defaultNoiseSeed   = 1

	minSawPartials = 2
)

// Shape selects the waveform produced by an Oscillator.
type Shape int

const (
	// Sine is the plain sine primitive.
	Sine Shape = iota
	// Triangle is asin(sin), a linear-sloped triangle.
	Triangle
	// Square is the sign of the sine primitive.
	Square
	// SawAnalog is a band-limited additive sawtooth; cost grows linearly
	// with the configured partial count.
	SawAnalog
	// SawDigital is the closed-form sawtooth. Undefined at time zero; the
	// oscillator returns 0 there.
	SawDigital
	// Noise is a uniform draw in [-1, 1] per call, independent of time and
	// frequency.
	Noise
)

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case SawAnalog:
		return "saw_analog"
	case SawDigital:
		return "saw_digital"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

func validShape(s Shape) bool {
	return s >= Sine && s <= Noise
}

// Option mutates oscillator construction parameters.
type Option func(*Oscillator) error

// WithVibrato modulates the phase with a low-frequency oscillator of the
// given rate and amplitude. Rate must be >= 0 and finite; depth must be
// finite.
func WithVibrato(rateHz, depth float64) Option {
	return func(o *Oscillator) error {
		if rateHz < 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
			return fmt.Errorf("osc: vibrato rate must be >= 0 and finite: %f", rateHz)
		}
		if math.IsNaN(depth) || math.IsInf(depth, 0) {
			return fmt.Errorf("osc: vibrato depth must be finite: %f", depth)
		}
		o.lfoHertz = rateHz
		o.lfoDepth = depth
		return nil
	}
}

// WithSawPartials sets the additive depth of the band-limited sawtooth.
// Partials below the count contribute sin(k·phase)/k each.
func WithSawPartials(n int) Option {
	return func(o *Oscillator) error {
		if n < minSawPartials {
			return fmt.Errorf("osc: saw partials must be >= %d: %d", minSawPartials, n)
		}
		o.sawPartials = n
		return nil
	}
}

// WithSeed sets the deterministic seed of the noise source.
func WithSeed(seed int64) Option {
	return func(o *Oscillator) error {
		o.seed = seed
		return nil
	}
}

// Oscillator generates samples for one waveform configuration.
type Oscillator struct {
	shape       Shape
	lfoHertz    float64
	lfoDepth    float64
	sawPartials int
	seed        int64
	rng         *rand.Rand
}

// New creates an oscillator of the given shape with optional overrides.
func New(shape Shape, opts ...Option) (*Oscillator, error) {
	if !validShape(shape) {
		return nil, fmt.Errorf("osc: invalid shape: %d", shape)
	}

	o := &Oscillator{
		shape:       shape,
		sawPartials: defaultSawPartials,
		seed:        defaultNoiseSeed,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	o.rng = rand.New(rand.NewSource(o.seed))
	return o, nil
}

// Shape returns the configured waveform shape.
func (o *Oscillator) Shape() Shape { return o.shape }

// Sample returns one output value for the given time and base frequency.
// Output is roughly within [-1, 1]; SawAnalog may overshoot slightly near
// its discontinuity. Degenerate inputs (zero frequency for pitched shapes)
// are the caller's responsibility.
func (o *Oscillator) Sample(t, hertz float64) float64 {
	if o.shape == Noise {
		return 2*o.rng.Float64() - 1
	}

	phase := 2*math.Pi*hertz*t + o.lfoDepth*hertz*wave(2*math.Pi*o.lfoHertz*t)

	switch o.shape {
	case Sine:
		return wave(phase)

	case Triangle:
		return math.Asin(wave(phase)) * 2 / math.Pi

	case Square:
		if wave(phase) > 0 {
			return 1
		}
		return -1

	case SawAnalog:
		out := 0.0
		for k := 1; k < o.sawPartials; k++ {
			out += wave(phase*float64(k)) / float64(k)
		}
		return out * 2 / math.Pi

	case SawDigital:
		// The closed form divides by time and is singular at t = 0. Return
		// 0 at the singular point; the waveform keeps its discontinuity
		// elsewhere.
		if t <= 0 {
			return 0
		}
		return phase*math.Mod(t, 1/hertz)/math.Pi/t - math.Pi/2
	}

	return 0
}
