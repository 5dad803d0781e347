package instrument

import (
	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Bell is a struck bell: three sine partials an octave apart with a slight
// vibrato on the lowest, under a slow-decay, zero-sustain envelope.
// Completion is amplitude-gated; the lifetime bound only backstops it.
type Bell struct {
	params
	fundamental *osc.Oscillator
	second      *osc.Oscillator
	third       *osc.Oscillator
}

// NewBell creates a bell instrument.
func NewBell(opts ...Option) *Bell {
	_ = applyOptions(opts) // no noise source; accepted for signature parity

	return &Bell{
		params: params{
			volume:      1.0,
			maxLifetime: 3.0,
			name:        "Bell",
			env: envelope.ADSR{
				AttackTime:       0.01,
				DecayTime:        1.0,
				SustainAmplitude: 0.0,
				ReleaseTime:      1.0,
				StartAmplitude:   1.0,
			},
		},
		fundamental: mustOsc(osc.New(osc.Sine, osc.WithVibrato(5, 0.001))),
		second:      mustOsc(osc.New(osc.Sine)),
		third:       mustOsc(osc.New(osc.Sine)),
	}
}

// Sound renders the bell's contribution for the note at global time t.
func (b *Bell) Sound(t float64, n *Note) (float64, bool) {
	amp := b.env.Amplitude(t, n.On, n.Off)
	age := t - n.On

	sound := 1.0*b.fundamental.Sample(age, osc.Pitch(n.ID+12)) +
		0.5*b.second.Sample(age, osc.Pitch(n.ID+24)) +
		0.25*b.third.Sample(age, osc.Pitch(n.ID+36))

	return amp * sound * b.volume, b.fadedOut(amp)
}
