// Package filter provides one-pole IIR smoothers: a low-pass and a
// high-pass with a single previous-sample memory. Both derive their
// coefficient from a cutoff frequency and sample rate as
// alpha = exp(-2*pi*cutoff/rate).
//
// Filters are stateful and must have exactly one caller at a time; the
// built-in instruments do not use them, they are part of the reusable
// primitive set.
package filter

import (
	"fmt"
	"math"
)

const (
	defaultCutoffHz   = 120.0
	defaultSampleRate = 44100.0
)

// onePole carries the shared coefficient and memory of both filter kinds.
type onePole struct {
	alpha      float64
	prev       float64
	sampleRate float64
}

func newOnePole(cutoffHz, sampleRateHz float64) (onePole, error) {
	if sampleRateHz <= 0 || math.IsNaN(sampleRateHz) || math.IsInf(sampleRateHz, 0) {
		return onePole{}, fmt.Errorf("filter: sample rate must be > 0 and finite: %f", sampleRateHz)
	}
	if cutoffHz < 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return onePole{}, fmt.Errorf("filter: cutoff must be >= 0 and finite: %f", cutoffHz)
	}

	p := onePole{sampleRate: sampleRateHz}
	p.alpha = alphaFor(cutoffHz, sampleRateHz)
	return p, nil
}

// SetCutoff recomputes the coefficient for a new cutoff frequency. The
// previous-sample memory is kept so the output stays continuous.
func (p *onePole) SetCutoff(cutoffHz float64) error {
	if cutoffHz < 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return fmt.Errorf("filter: cutoff must be >= 0 and finite: %f", cutoffHz)
	}
	p.alpha = alphaFor(cutoffHz, p.sampleRate)
	return nil
}

// Reset clears the previous-sample memory.
func (p *onePole) Reset() { p.prev = 0 }

// Alpha returns the current smoothing coefficient.
func (p *onePole) Alpha() float64 { return p.alpha }

// SampleRate returns the configured sample rate in Hz.
func (p *onePole) SampleRate() float64 { return p.sampleRate }

// LowPass smooths a signal toward its slow-moving component.
type LowPass struct {
	onePole
}

// NewLowPass creates a low-pass filter. Zero arguments are replaced by the
// reference defaults (120 Hz cutoff at 44.1 kHz).
func NewLowPass(cutoffHz, sampleRateHz float64) (*LowPass, error) {
	if cutoffHz == 0 {
		cutoffHz = defaultCutoffHz
	}
	if sampleRateHz == 0 {
		sampleRateHz = defaultSampleRate
	}
	p, err := newOnePole(cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}
	return &LowPass{onePole: p}, nil
}

// Process filters one sample.
func (f *LowPass) Process(sample float64) float64 {
	out := (1-f.alpha)*sample + f.alpha*f.prev
	f.prev = out
	return out
}

// ProcessInPlace filters buf in place.
func (f *LowPass) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.Process(buf[i])
	}
}

// HighPass keeps the fast-moving component of a signal.
type HighPass struct {
	onePole
}

// NewHighPass creates a high-pass filter. Zero arguments are replaced by
// the reference defaults (120 Hz cutoff at 44.1 kHz).
func NewHighPass(cutoffHz, sampleRateHz float64) (*HighPass, error) {
	if cutoffHz == 0 {
		cutoffHz = defaultCutoffHz
	}
	if sampleRateHz == 0 {
		sampleRateHz = defaultSampleRate
	}
	p, err := newOnePole(cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}
	return &HighPass{onePole: p}, nil
}

// Process filters one sample.
func (f *HighPass) Process(sample float64) float64 {
	out := f.alpha * (2*f.prev - sample)
	f.prev = out
	return out
}

// ProcessInPlace filters buf in place.
func (f *HighPass) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.Process(buf[i])
	}
}
