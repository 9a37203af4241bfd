package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/events"
	"github.com/vovakirdan/typejump/internal/platforms"
)

// Phase is the session lifecycle.
type Phase int

const (
	Idle Phase = iota
	Playing
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a session. Platforms is never mutated
// after it has been handed out; every change commits a new slice.
type State struct {
	Phase        Phase
	Reason       events.Reason // Why the last session ended
	Difficulty   config.Difficulty
	Score        int
	Combo        int
	MaxCombo     int
	TotalKeys    int
	CorrectKeys  int
	Accuracy     int // Percent, 100 before the first keystroke
	WPM          int
	TimeLeft     int // Seconds
	Duration     int // Session length in seconds
	ProblemWords []string
	Platforms    []platforms.Platform
	StartedAt    time.Time
	EndedAt      time.Time
}

// Current returns the platform being typed.
func (s State) Current() (platforms.Platform, bool) {
	i := platforms.CurrentIndex(s.Platforms)
	if i < 0 {
		return platforms.Platform{}, false
	}
	return s.Platforms[i], true
}

// Elapsed returns how many seconds of the session have passed.
func (s State) Elapsed() int {
	return s.Duration - s.TimeLeft
}

// Accuracy returns round(100*correct/total), or 100 with no keystrokes.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// WPM returns round((correct/5)/elapsedMinutes), 0 while no time has passed.
func WPM(correct, elapsedSecs int) int {
	minutes := float64(elapsedSecs) / 60
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / 5 / minutes))
}

// Points returns the award for a correct keystroke given the streak before
// it: base for the first step, doubled after one full step, and so on.
func Points(base, step, priorCombo int) int {
	return base * (priorCombo/step + 1)
}
