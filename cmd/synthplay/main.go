// Command synthplay plays a step-sequenced drum pattern through the
// default audio device.
//
// Usage:
//
//	synthplay [flags]
//
// Examples:
//
//	synthplay
//	synthplay -tempo 90 -duration 16s
//	synthplay -gain 0.3 -rate 48000
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-synth/synth/engine"
	"github.com/cwbudde/algo-synth/synth/instrument"
	"github.com/cwbudde/algo-synth/synth/sequencer"
)

const bytesPerSample = 4 // float32 mono

func main() {
	rate := flag.Int("rate", 44100, "output sample rate in Hz")
	tempo := flag.Float64("tempo", 120, "tempo in beats per minute")
	gain := flag.Float64("gain", 0.5, "master output gain")
	duration := flag.Duration("duration", 8*time.Second, "how long to play")
	flag.Parse()

	if err := run(*rate, *tempo, *gain, *duration); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(rate int, tempo, gain float64, duration time.Duration) error {
	eng, err := engine.New(
		engine.WithSampleRate(float64(rate)),
		engine.WithGain(gain),
	)
	if err != nil {
		return err
	}

	seq, err := sequencer.New(sequencer.WithTempo(tempo))
	if err != nil {
		return err
	}

	channels := []struct {
		inst    instrument.Instrument
		pattern string
	}{
		{instrument.NewKick(), "x...x...x..x.x.."},
		{instrument.NewSnare(), "..x...x...x...x."},
		{instrument.NewHiHat(), "x.x.x.x.x.x.x.x."},
	}
	for _, ch := range channels {
		if err := seq.AddChannel(ch.inst, ch.pattern); err != nil {
			return err
		}
	}

	src := &stream{engine: eng, rate: float64(rate)}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(src)
	player.Play()
	defer func() { _ = player.Close() }()

	// Drive the sequencer from wall-clock time; triggered notes are
	// stamped with the audio clock so envelopes line up with the samples
	// the device will pull next.
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	done := time.After(duration)
	last := time.Now()
	for {
		select {
		case <-done:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if seq.Advance(dt) == 0 {
				continue
			}
			t := src.now()
			for _, n := range seq.Triggered() {
				note := n
				note.On = t
				eng.AddNote(&note)
			}
		}
	}
}

// stream adapts the engine's block renderer to the io.Reader the audio
// backend pulls from. The sample counter doubles as the shared audio
// clock for note-on stamping.
type stream struct {
	engine  *engine.Engine
	rate    float64
	samples atomic.Uint64
	block   []float64
}

func (s *stream) now() float64 {
	return float64(s.samples.Load()) / s.rate
}

func (s *stream) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample
	if n == 0 {
		return 0, nil
	}
	if cap(s.block) < n {
		s.block = make([]float64, n)
	}
	buf := s.block[:n]

	s.engine.Render(buf, s.now())
	s.samples.Add(uint64(n))

	for i, v := range buf {
		// Keep the mix inside the device range.
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(float32(v)))
	}
	return n * bytesPerSample, nil
}
