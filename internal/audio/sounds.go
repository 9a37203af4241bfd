package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/typejump/internal/events"
)

// Sound is a feedback cue.
type Sound int

const (
	SoundCorrect Sound = iota
	SoundWrong
	SoundWordComplete
	SoundJump
	SoundGameOver
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	case SoundWordComplete:
		return "word_complete"
	case SoundJump:
		return "jump"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// masterGain keeps the mix well under clipping when cues overlap.
const masterGain = 0.3

// Tones returns the voices that make up s.
func Tones(s Sound) []Tone {
	switch s {
	case SoundCorrect:
		return []Tone{{
			Wave: WaveSine, From: 880, To: 440, FreqRamp: RampExponential,
			Gain: 0.1, GainEnd: 0.01, GainRamp: RampExponential,
			Duration: 100 * time.Millisecond,
		}}
	case SoundWrong:
		return []Tone{{
			Wave: WaveSaw, From: 220, To: 110, FreqRamp: RampLinear,
			Gain: 0.1, GainEnd: 0.01, GainRamp: RampLinear,
			Duration: 200 * time.Millisecond,
		}}
	case SoundWordComplete:
		notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
		tones := make([]Tone, len(notes))
		for i, f := range notes {
			tones[i] = Tone{
				Wave: WaveTriangle, From: f, To: f,
				Gain: 0.1, GainEnd: 0.01, GainRamp: RampExponential,
				Duration: 200 * time.Millisecond,
				Delay:    time.Duration(i) * 50 * time.Millisecond,
			}
		}
		return tones
	case SoundJump:
		return []Tone{{
			Wave: WaveSine, From: 200, To: 600, FreqRamp: RampExponential,
			Gain: 0.2, GainEnd: 0.01, GainRamp: RampExponential,
			Duration: 300 * time.Millisecond,
		}}
	case SoundGameOver:
		return []Tone{{
			Wave: WaveSquare, From: 150, To: 40, FreqRamp: RampExponential,
			Gain: 0.2, GainEnd: 0.01, GainRamp: RampLinear,
			Duration: 1500 * time.Millisecond,
		}}
	default:
		return nil
	}
}

// Build mixes the voices of s into one finite streamer. volume is a beep
// volume exponent (base 2) applied on top of the master gain.
func Build(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	tones := Tones(s)
	if len(tones) == 0 {
		return nil
	}
	voices := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var v beep.Streamer = NewSweep(t, rate)
		if t.Delay > 0 {
			v = beep.Seq(beep.Silence(rate.N(t.Delay)), v)
		}
		voices = append(voices, v)
	}
	return &effects.Volume{
		Streamer: beep.Mix(voices...),
		Base:     2,
		Volume:   math.Log2(masterGain) + volume,
	}
}

// SoundsFor maps an event to the cues it triggers.
func SoundsFor(evt events.Event) []Sound {
	switch evt.Kind {
	case events.CharacterAccepted:
		return []Sound{SoundCorrect}
	case events.Miss:
		return []Sound{SoundWrong}
	case events.WordComplete:
		return []Sound{SoundWordComplete, SoundJump}
	case events.GameOver:
		return []Sound{SoundGameOver}
	default:
		return nil
	}
}
