// Package osc provides the time-domain waveform primitives of the synth:
// sine, triangle, square, band-limited and closed-form sawtooth, and
// uniform noise, with optional low-frequency phase modulation (vibrato).
//
// An Oscillator is a fixed configuration; Sample is a pure function of
// time and base frequency (Noise excepted, which draws from the
// oscillator's own deterministic random source). Oscillators carry no
// per-note state and may be shared across notes, but a Noise oscillator's
// random source is not synchronized and should have a single caller.
//
// The sine primitive evaluates with math.Sin by default; building with the
// fastmath tag substitutes a low-order polynomial approximation with
// reduced precision.
//
// Pitch maps scale steps to frequencies on a 12-tone equal-tempered scale
// anchored at 8 Hz, the reference tuning used by the built-in instruments.
package osc
