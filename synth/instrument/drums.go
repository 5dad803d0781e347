package instrument

import (
	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// The percussion set tunes its envelopes with zero release, so the
// amplitude settles at the silence floor instead of decaying through it;
// completion is therefore lifetime-gated rather than amplitude-gated.

// Kick is a kick drum: a low sine with a strong pitch-drop vibrato and a
// trace of noise.
type Kick struct {
	params
	body  *osc.Oscillator
	noise *osc.Oscillator
}

// NewKick creates a kick drum instrument.
func NewKick(opts ...Option) *Kick {
	cfg := applyOptions(opts)

	return &Kick{
		params: params{
			volume:      1.0,
			maxLifetime: 1.5,
			name:        "Drum Kick",
			env: envelope.ADSR{
				AttackTime:       0.01,
				DecayTime:        0.15,
				SustainAmplitude: 0.0,
				ReleaseTime:      0.0,
				StartAmplitude:   1.0,
			},
		},
		body:  mustOsc(osc.New(osc.Sine, osc.WithVibrato(1, 1))),
		noise: mustOsc(osc.New(osc.Noise, osc.WithSeed(cfg.noiseSeed))),
	}
}

// Sound renders the kick's contribution for the note at global time t.
func (k *Kick) Sound(t float64, n *Note) (float64, bool) {
	amp := k.env.Amplitude(t, n.On, n.Off)
	age := t - n.On

	sound := 0.99*k.body.Sample(age, osc.Pitch(n.ID-36)) +
		0.01*k.noise.Sample(age, 0)

	return amp * sound * k.volume, k.expired(t, n.On)
}

// Snare is a snare drum: a low sine and noise in equal measure.
type Snare struct {
	params
	body  *osc.Oscillator
	noise *osc.Oscillator
}

// NewSnare creates a snare drum instrument.
func NewSnare(opts ...Option) *Snare {
	cfg := applyOptions(opts)

	return &Snare{
		params: params{
			volume:      1.0,
			maxLifetime: 1.0,
			name:        "Drum Snare",
			env: envelope.ADSR{
				AttackTime:       0.0,
				DecayTime:        0.2,
				SustainAmplitude: 0.0,
				ReleaseTime:      0.0,
				StartAmplitude:   1.0,
			},
		},
		body:  mustOsc(osc.New(osc.Sine, osc.WithVibrato(0.5, 1))),
		noise: mustOsc(osc.New(osc.Noise, osc.WithSeed(cfg.noiseSeed))),
	}
}

// Sound renders the snare's contribution for the note at global time t.
func (s *Snare) Sound(t float64, n *Note) (float64, bool) {
	amp := s.env.Amplitude(t, n.On, n.Off)
	age := t - n.On

	sound := 0.5*s.body.Sample(age, osc.Pitch(n.ID-24)) +
		0.5*s.noise.Sample(age, 0)

	return amp * sound * s.volume, s.expired(t, n.On)
}

// HiHat is a closed hi-hat: mostly noise with a faint high square.
type HiHat struct {
	params
	ring  *osc.Oscillator
	noise *osc.Oscillator
}

// NewHiHat creates a hi-hat instrument.
func NewHiHat(opts ...Option) *HiHat {
	cfg := applyOptions(opts)

	return &HiHat{
		params: params{
			volume:      0.5,
			maxLifetime: 1.5,
			name:        "Drum HiHat",
			env: envelope.ADSR{
				AttackTime:       0.01,
				DecayTime:        0.05,
				SustainAmplitude: 0.0,
				ReleaseTime:      0.0,
				StartAmplitude:   1.0,
			},
		},
		ring:  mustOsc(osc.New(osc.Square, osc.WithVibrato(1.5, 1))),
		noise: mustOsc(osc.New(osc.Noise, osc.WithSeed(cfg.noiseSeed))),
	}
}

// Sound renders the hi-hat's contribution for the note at global time t.
func (h *HiHat) Sound(t float64, n *Note) (float64, bool) {
	amp := h.env.Amplitude(t, n.On, n.Off)
	age := t - n.On

	sound := 0.1*h.ring.Sample(age, osc.Pitch(n.ID-12)) +
		0.9*h.noise.Sample(age, 0)

	return amp * sound * h.volume, h.expired(t, n.On)
}
