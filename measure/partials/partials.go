// Package partials measures the harmonic structure of a rendered tone:
// the spectral level of each partial of a fundamental, relative to the
// fundamental itself. It is primarily test instrumentation for checking
// that oscillators and instruments put their energy where they should.
package partials

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultMaxPartials = 8
	// Half-width of the bin neighbourhood summed per partial. Two bins
	// covers the Hann main lobe.
	defaultCaptureBins = 2
)

// Config holds partial-analysis parameters. Zero values select defaults:
// the FFT size is the signal length rounded up to a power of two, the
// fundamental is found by peak search, and eight partials are reported.
type Config struct {
	SampleRate    float64
	FFTSize       int
	FundamentalHz float64
	MaxPartials   int
	CaptureBins   int
}

// Result holds the measured partial structure.
type Result struct {
	FundamentalHz    float64
	FundamentalLevel float64

	// Levels holds one entry per partial, starting at the fundamental
	// (Levels[0] is always 1), each relative to the fundamental level.
	// Partials above Nyquist are omitted.
	Levels []float64
}

// AnalyzeSignal windows the signal, transforms it, and reports the level
// of each partial of the fundamental. An empty or degenerate input
// yields a zero Result.
func AnalyzeSignal(signal []float64, cfg Config) Result {
	if len(signal) == 0 || cfg.SampleRate <= 0 {
		return Result{}
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize <= 1 || fftSize < len(signal) {
		return Result{}
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*hann(i, len(signal)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	binHz := cfg.SampleRate / float64(fftSize)
	maxBin := binCount - 1

	fundamentalBin := findFundamentalBin(mag, cfg.FundamentalHz, binHz, maxBin)
	if fundamentalBin < 1 {
		return Result{}
	}

	captureBins := cfg.CaptureBins
	if captureBins <= 0 {
		captureBins = defaultCaptureBins
	}
	if captureBins*2 > fundamentalBin {
		captureBins = fundamentalBin / 2
	}

	fundamentalLevel := binLevel(mag, fundamentalBin, captureBins)
	if fundamentalLevel <= 0 {
		return Result{FundamentalHz: float64(fundamentalBin) * binHz}
	}

	maxPartials := cfg.MaxPartials
	if maxPartials <= 0 {
		maxPartials = defaultMaxPartials
	}

	levels := make([]float64, 0, maxPartials)
	for k := 1; k <= maxPartials; k++ {
		bin := k * fundamentalBin
		if bin > maxBin {
			break
		}
		levels = append(levels, binLevel(mag, bin, captureBins)/fundamentalLevel)
	}

	return Result{
		FundamentalHz:    float64(fundamentalBin) * binHz,
		FundamentalLevel: fundamentalLevel,
		Levels:           levels,
	}
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

func findFundamentalBin(mag []float64, fundamentalHz, binHz float64, maxBin int) int {
	if fundamentalHz > 0 {
		bin := int(math.Round(fundamentalHz / binHz))
		return clampInt(bin, 1, maxBin)
	}

	bestBin := 1
	bestVal := -1.0
	for i := 1; i <= maxBin; i++ {
		if mag[i] > bestVal {
			bestVal = mag[i]
			bestBin = i
		}
	}
	return bestBin
}

// binLevel sums the magnitude over bin±captureBins so that leakage from
// the analysis window is captured along with the peak.
func binLevel(mag []float64, bin, captureBins int) float64 {
	if bin < 0 || bin >= len(mag) {
		return 0
	}

	lo := max(bin-captureBins, 0)
	hi := min(bin+captureBins, len(mag)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += mag[i]
	}
	return sum
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
