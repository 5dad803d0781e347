// Package envelope implements the attack-decay-sustain-release amplitude
// model. An ADSR is a plain value: amplitude is a pure function of global
// time and a note's on/off timestamps, so one envelope may serve any number
// of concurrently sounding notes.
package envelope

// AudibleFloor is the gain below which a note is considered silent. Any
// computed amplitude at or below this value is reported as exactly 0, which
// doubles as the completion signal for amplitude-gated instruments.
const AudibleFloor = 0.01

// ADSR holds the envelope parameters. Times are in seconds, amplitudes are
// unitless gain.
type ADSR struct {
	AttackTime       float64
	DecayTime        float64
	SustainAmplitude float64
	ReleaseTime      float64
	StartAmplitude   float64
}

// Default returns the reference envelope: 100 ms attack and decay, full
// sustain, 200 ms release.
func Default() ADSR {
	return ADSR{
		AttackTime:       0.1,
		DecayTime:        0.1,
		SustainAmplitude: 1.0,
		ReleaseTime:      0.2,
		StartAmplitude:   1.0,
	}
}

// Amplitude returns the gain for a note at global time t. A note is held
// while on > off; setting off at or past on releases it. Held notes ramp
// linearly to StartAmplitude over AttackTime, transition to
// SustainAmplitude over DecayTime, then hold. Released notes fall linearly
// to 0 over ReleaseTime starting from the value the attack/decay ramp had
// reached at off. Results at or below AudibleFloor report as exactly 0.
func (e ADSR) Amplitude(t, on, off float64) float64 {
	var amp float64

	if on > off {
		amp = e.rampAt(t - on)
	} else {
		if e.ReleaseTime <= 0 {
			return 0
		}
		base := e.rampAt(off - on)
		amp = base - (t-off)/e.ReleaseTime*base
	}

	if amp <= AudibleFloor {
		return 0
	}
	return amp
}

// rampAt evaluates the attack/decay/sustain ramp at the given note age.
// Zero attack or decay times collapse their segments instead of dividing
// by zero.
func (e ADSR) rampAt(age float64) float64 {
	switch {
	case age < 0:
		return 0
	case e.AttackTime > 0 && age <= e.AttackTime:
		return age / e.AttackTime * e.StartAmplitude
	case age <= e.AttackTime+e.DecayTime:
		if e.DecayTime <= 0 {
			return e.SustainAmplitude
		}
		return (age-e.AttackTime)/e.DecayTime*(e.SustainAmplitude-e.StartAmplitude) + e.StartAmplitude
	default:
		return e.SustainAmplitude
	}
}
