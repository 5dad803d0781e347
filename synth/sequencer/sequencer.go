// Package sequencer advances a fixed-meter beat grid by wall-clock time
// and emits notes for channels whose patterns mark the crossed steps.
//
// A sequencer is owned by a single producer context (a timer or game
// loop); it performs no locking of its own. It only produces notes —
// inserting them into an engine's pool, with the on-timestamp of the
// caller's clock, is the caller's responsibility.
package sequencer

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/instrument"
)

// TriggerMark is the pattern character that fires a note; every other
// character is a rest.
const TriggerMark = 'x'

// DefaultNoteID is the scale step assigned to sequencer-triggered notes.
const DefaultNoteID = 64

const (
	defaultTempo    = 120.0
	defaultBeats    = 4
	defaultSubBeats = 4
)

// Option mutates sequencer construction parameters.
type Option func(*config) error

type config struct {
	tempo    float64
	beats    int
	subBeats int
}

func defaultConfig() config {
	return config{
		tempo:    defaultTempo,
		beats:    defaultBeats,
		subBeats: defaultSubBeats,
	}
}

// WithTempo sets the tempo in beats per minute.
func WithTempo(bpm float64) Option {
	return func(cfg *config) error {
		if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
			return fmt.Errorf("sequencer: tempo must be > 0 and finite: %f", bpm)
		}
		cfg.tempo = bpm
		return nil
	}
}

// WithMeter sets the grid dimensions: beats per bar and subdivisions per
// beat.
func WithMeter(beats, subBeats int) Option {
	return func(cfg *config) error {
		if beats <= 0 {
			return fmt.Errorf("sequencer: beats must be > 0: %d", beats)
		}
		if subBeats <= 0 {
			return fmt.Errorf("sequencer: sub-beats must be > 0: %d", subBeats)
		}
		cfg.beats = beats
		cfg.subBeats = subBeats
		return nil
	}
}

// Channel binds an instrument to a pattern over the step grid.
type Channel struct {
	Instrument instrument.Instrument
	Pattern    string
}

// Sequencer is the fixed-meter step grid.
type Sequencer struct {
	beats        int
	subBeats     int
	totalSteps   int
	tempo        float64
	stepDuration float64

	currentStep int
	clock       float64

	channels  []Channel
	triggered []instrument.Note
}

// New creates a sequencer, by default 4 beats of 4 subdivisions at
// 120 BPM.
func New(opts ...Option) (*Sequencer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Sequencer{
		beats:        cfg.beats,
		subBeats:     cfg.subBeats,
		totalSteps:   cfg.beats * cfg.subBeats,
		tempo:        cfg.tempo,
		stepDuration: 60 / cfg.tempo / float64(cfg.subBeats),
	}, nil
}

// AddChannel registers an instrument with a pattern string. The pattern
// must cover every step of the grid; shorter patterns are rejected here so
// the advance loop never indexes out of bounds.
func (s *Sequencer) AddChannel(inst instrument.Instrument, pattern string) error {
	if inst == nil {
		return fmt.Errorf("sequencer: channel instrument must not be nil")
	}
	if len(pattern) < s.totalSteps {
		return fmt.Errorf("sequencer: pattern length %d shorter than %d steps", len(pattern), s.totalSteps)
	}
	s.channels = append(s.channels, Channel{Instrument: inst, Pattern: pattern})
	return nil
}

// Advance accumulates elapsed wall-clock time and fires every step
// boundary it crosses, wrapping at the end of the grid. Each crossed step
// emits one note per channel whose pattern marks it. The return value is
// the number of notes triggered by this call; they are retrievable via
// Triggered until the next Advance.
func (s *Sequencer) Advance(deltaTime float64) int {
	s.triggered = s.triggered[:0]

	s.clock += deltaTime
	for s.clock >= s.stepDuration {
		s.clock -= s.stepDuration

		s.currentStep++
		if s.currentStep >= s.totalSteps {
			s.currentStep = 0
		}

		for _, ch := range s.channels {
			if ch.Pattern[s.currentStep] == TriggerMark {
				s.triggered = append(s.triggered, instrument.Note{
					ID:         DefaultNoteID,
					Active:     true,
					Instrument: ch.Instrument,
				})
			}
		}
	}

	return len(s.triggered)
}

// Triggered returns the notes emitted by the last Advance call. The slice
// is reused; callers must copy notes they keep.
func (s *Sequencer) Triggered() []instrument.Note { return s.triggered }

// CurrentStep returns the step index the grid last advanced to.
func (s *Sequencer) CurrentStep() int { return s.currentStep }

// Steps returns the total number of steps in the grid.
func (s *Sequencer) Steps() int { return s.totalSteps }

// StepDuration returns the wall-clock length of one step in seconds.
func (s *Sequencer) StepDuration() float64 { return s.stepDuration }

// Tempo returns the tempo in beats per minute.
func (s *Sequencer) Tempo() float64 { return s.tempo }

// Channels returns the registered channels.
func (s *Sequencer) Channels() []Channel { return s.channels }
