package instrument

import (
	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Harmonica is a reedy sustained voice: a band-limited saw an octave below
// the note, two squares at the note and an octave above, and a sprinkle of
// noise, under an instant-attack, high-sustain envelope. Amplitude-gated,
// unbounded lifetime.
type Harmonica struct {
	params
	saw     *osc.Oscillator
	square1 *osc.Oscillator
	square2 *osc.Oscillator
	noise   *osc.Oscillator
}

// NewHarmonica creates a harmonica instrument.
func NewHarmonica(opts ...Option) *Harmonica {
	cfg := applyOptions(opts)

	return &Harmonica{
		params: params{
			volume:      0.3,
			maxLifetime: -1,
			name:        "Harmonica",
			env: envelope.ADSR{
				AttackTime:       0.0,
				DecayTime:        1.0,
				SustainAmplitude: 0.95,
				ReleaseTime:      0.1,
				StartAmplitude:   1.0,
			},
		},
		saw:     mustOsc(osc.New(osc.SawAnalog, osc.WithVibrato(5, 0.001), osc.WithSawPartials(100))),
		square1: mustOsc(osc.New(osc.Square, osc.WithVibrato(5, 0.001))),
		square2: mustOsc(osc.New(osc.Square)),
		noise:   mustOsc(osc.New(osc.Noise, osc.WithSeed(cfg.noiseSeed))),
	}
}

// Sound renders the harmonica's contribution for the note at global time t.
func (h *Harmonica) Sound(t float64, n *Note) (float64, bool) {
	amp := h.env.Amplitude(t, n.On, n.Off)
	age := t - n.On

	sound := 1.0*h.saw.Sample(age, osc.Pitch(n.ID-12)) +
		1.0*h.square1.Sample(age, osc.Pitch(n.ID)) +
		0.5*h.square2.Sample(age, osc.Pitch(n.ID+12)) +
		0.05*h.noise.Sample(age, 0)

	return amp * sound * h.volume, h.fadedOut(amp)
}
