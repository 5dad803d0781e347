// Package instrument defines notes and the sound recipes that render them.
//
// A Note is one sounding event: a scale step, on/off timestamps on the
// engine's global clock, and a non-owning reference to the Instrument that
// renders it. Instruments are long-lived, read-mostly configuration objects
// shared by many notes; notes never own them.
//
// An Instrument turns global time plus a note into one sample and a
// completion flag. Two completion policies exist: amplitude-gated
// instruments finish when their envelope reports silence, lifetime-gated
// instruments (the percussion set, whose zero-release envelopes never decay
// through the silence floor once sustain is reached) finish after a fixed
// number of seconds.
//
// Five built-ins are provided: Bell, Harmonica, Kick, Snare and HiHat,
// each a fixed additive recipe over the osc package's waveforms with its
// own envelope tuning.
package instrument
