// Package engine maintains the pool of currently sounding notes and mixes
// them into an output stream. One mutex serializes every pool operation:
// the audio-callback consumer pulling samples and the producers adding or
// releasing notes from timer or UI threads.
package engine

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/synth/instrument"
)

const (
	defaultSampleRate = 44100.0
	defaultGain       = 1.0
)

// Option mutates engine construction parameters.
type Option func(*Engine) error

// WithSampleRate sets the sample rate used by block rendering.
func WithSampleRate(sampleRateHz float64) Option {
	return func(e *Engine) error {
		if sampleRateHz <= 0 || math.IsNaN(sampleRateHz) || math.IsInf(sampleRateHz, 0) {
			return fmt.Errorf("engine: sample rate must be > 0 and finite: %f", sampleRateHz)
		}
		e.sampleRate = sampleRateHz
		return nil
	}
}

// WithGain sets the master output gain.
func WithGain(gain float64) Option {
	return func(e *Engine) error {
		if gain < 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("engine: gain must be >= 0 and finite: %f", gain)
		}
		e.gain = gain
		return nil
	}
}

// Engine is the concurrently accessed note pool and mixer.
type Engine struct {
	mu    sync.Mutex
	notes []*instrument.Note

	sampleRate float64
	gain       float64
}

// New creates an engine with an empty note pool.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		sampleRate: defaultSampleRate,
		gain:       defaultGain,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SampleRate returns the sample rate used by block rendering, in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Gain returns the master output gain.
func (e *Engine) Gain() float64 { return e.gain }

// AddNote inserts a note into the pool.
func (e *Engine) AddNote(n *instrument.Note) {
	if n == nil {
		return
	}
	e.mu.Lock()
	e.notes = append(e.notes, n)
	e.mu.Unlock()
}

// AddNotes inserts several notes under one lock acquisition.
func (e *Engine) AddNotes(notes ...*instrument.Note) {
	e.mu.Lock()
	for _, n := range notes {
		if n != nil {
			e.notes = append(e.notes, n)
		}
	}
	e.mu.Unlock()
}

// ReleaseNote marks the note released at global time t. The note fades out
// per its instrument's envelope and is retired once the instrument reports
// completion.
func (e *Engine) ReleaseNote(n *instrument.Note, t float64) {
	if n == nil {
		return
	}
	e.mu.Lock()
	n.Off = t
	e.mu.Unlock()
}

// ActiveNotes returns the current pool size.
func (e *Engine) ActiveNotes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.notes)
}

// Sample mixes every active note at global time t into one output value.
// Notes whose instruments report completion are retired after the pass.
// The sum is unclamped apart from the master gain; final limiting is the
// caller's responsibility. Cost is linear in the pool size.
func (e *Engine) Sample(t float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixLocked(t) * e.gain
}

// Render fills buf with consecutive samples starting at the given global
// time, spaced by the engine's sample rate, under a single lock
// acquisition. Intended for block-pulling audio backends.
func (e *Engine) Render(buf []float64, start float64) {
	if len(buf) == 0 {
		return
	}

	e.mu.Lock()
	for i := range buf {
		buf[i] = e.mixLocked(start + float64(i)/e.sampleRate)
	}
	e.mu.Unlock()

	vecmath.ScaleBlock(buf, buf, e.gain)
}

// mixLocked accumulates one sample over the pool and prunes finished
// notes. Callers must hold the mutex.
func (e *Engine) mixLocked(t float64) float64 {
	out := 0.0

	for _, n := range e.notes {
		if n.Instrument == nil {
			// Unbound notes are silent and never finish.
			continue
		}
		s, finished := n.Instrument.Sound(t, n)
		out += s
		if finished {
			n.Active = false
		}
	}

	kept := e.notes[:0]
	for _, n := range e.notes {
		if n.Active {
			kept = append(kept, n)
		}
	}
	for i := len(kept); i < len(e.notes); i++ {
		e.notes[i] = nil
	}
	e.notes = kept

	return out
}
