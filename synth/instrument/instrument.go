package instrument

import (
	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Instrument renders notes. Sound returns the instrument's contribution for
// the note at global time t together with a completion flag; once finished
// is reported the engine retires the note.
//
// Implementations must be safe for concurrent reads of their parameters;
// the built-ins are immutable after construction except for their noise
// oscillators, which the engine's render lock serializes.
type Instrument interface {
	Name() string
	Sound(t float64, n *Note) (sample float64, finished bool)
}

// Option adjusts built-in instrument construction.
type Option func(*config)

type config struct {
	noiseSeed int64
}

func defaultConfig() config {
	return config{noiseSeed: 1}
}

// WithNoiseSeed pins the seed of the instrument's noise oscillators so the
// output is reproducible under test.
func WithNoiseSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.noiseSeed = seed
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// params is the parameter base shared by the built-ins: output gain, an
// optional lifetime bound, a display name and the owned envelope.
type params struct {
	volume      float64
	maxLifetime float64
	name        string
	env         envelope.ADSR
}

// Name returns the instrument's display name.
func (p *params) Name() string { return p.name }

// Envelope returns a copy of the instrument's envelope parameters.
func (p *params) Envelope() envelope.ADSR { return p.env }

// MaxLifetime returns the lifetime bound in seconds; non-positive means
// unbounded.
func (p *params) MaxLifetime() float64 { return p.maxLifetime }

// fadedOut is the amplitude-gated completion rule.
func (p *params) fadedOut(amplitude float64) bool {
	return amplitude <= 0
}

// expired is the lifetime-gated completion rule, for envelopes tuned so
// the amplitude never decays through the silence floor.
func (p *params) expired(t, on float64) bool {
	return p.maxLifetime > 0 && t-on >= p.maxLifetime
}

// mustOsc unwraps oscillator construction for the fixed built-in recipes,
// whose parameters are valid by construction.
func mustOsc(o *osc.Oscillator, err error) *osc.Oscillator {
	if err != nil {
		panic(err)
	}
	return o
}
