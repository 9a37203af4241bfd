package engine

import (
	"time"

	"github.com/vovakirdan/typejump/internal/config"
)

// Command is an input to Apply. Every state change goes through one.
type Command interface {
	command()
}

// KeyPress is one physical key press. Key uses Bubble Tea key names:
// a single rune for printable keys, "enter", "tab" and so on otherwise.
type KeyPress struct {
	Key string
	At  time.Time
}

// SecondElapsed advances the countdown by one second.
type SecondElapsed struct {
	At time.Time
}

// Start begins a session, or restarts one.
type Start struct {
	At time.Time
}

// Escape reports that the current platform scrolled out of reach.
type Escape struct {
	At time.Time
}

// ReplacePool swaps in a freshly fetched pool for a difficulty. An empty
// Words keeps the existing pool and only records the difficulty.
type ReplacePool struct {
	Difficulty config.Difficulty
	Words      []string
}

func (KeyPress) command()      {}
func (SecondElapsed) command() {}
func (Start) command()         {}
func (Escape) command()        {}
func (ReplacePool) command()   {}

// Result classifies what a command did.
type Result int

const (
	Ignored   Result = iota
	Accepted         // Correct key, word still in progress
	Completed        // Correct key finished the word
	Missed
	Started
	Ticked
	Ended
	PoolReplaced
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Accepted:
		return "accepted"
	case Completed:
		return "completed"
	case Missed:
		return "missed"
	case Started:
		return "started"
	case Ticked:
		return "ticked"
	case Ended:
		return "ended"
	case PoolReplaced:
		return "pool replaced"
	default:
		return "unknown"
	}
}

// Outcome is the result of one command plus the state it committed.
type Outcome struct {
	Result Result
	State  State
}
