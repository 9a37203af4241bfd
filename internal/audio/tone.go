// Package audio plays short synthesized feedback tones for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Ramp is how a value moves between its start and end.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// Tone describes one oscillator voice: a frequency sweep with a gain
// envelope, optionally delayed from the start of the sound.
type Tone struct {
	Wave     Wave
	From, To float64 // Hz
	FreqRamp Ramp
	Gain     float64 // Start amplitude
	GainEnd  float64
	GainRamp Ramp
	Duration time.Duration
	Delay    time.Duration
}

// sweep streams a Tone.
type sweep struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

// NewSweep creates a finite streamer for t, delay excluded.
func NewSweep(t Tone, rate beep.SampleRate) beep.Streamer {
	return &sweep{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		p := float64(s.pos) / float64(s.total)
		freq := ramp(s.tone.FreqRamp, s.tone.From, s.tone.To, p)
		gain := ramp(s.tone.GainRamp, s.tone.Gain, s.tone.GainEnd, p)

		val := gain * wave(s.tone.Wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// ramp interpolates from a to b at progress p in [0, 1]. Exponential ramps
// need both ends positive and fall back to linear otherwise.
func ramp(kind Ramp, a, b, p float64) float64 {
	if kind == RampExponential && a > 0 && b > 0 {
		return a * math.Pow(b/a, p)
	}
	return a + (b-a)*p
}

// wave evaluates one cycle of w at phase in [0, 1).
func wave(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
