// Package events carries discrete game events from the engine to the
// presentation layer and audio. The engine only sees the Sink interface.
package events

import (
	"time"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/platforms"
)

// Kind identifies an event.
type Kind int

const (
	CharacterAccepted Kind = iota // Correct key on the current platform
	WordComplete                  // Current platform finished, player jumps
	Miss                          // Wrong key
	GameStarted
	GameOver
	DifficultyChanged
)

// String returns the event name.
func (k Kind) String() string {
	switch k {
	case CharacterAccepted:
		return "character_accepted"
	case WordComplete:
		return "word_complete"
	case Miss:
		return "miss"
	case GameStarted:
		return "game_started"
	case GameOver:
		return "game_over"
	case DifficultyChanged:
		return "difficulty_changed"
	default:
		return "unknown"
	}
}

// Reason says why a session ended.
type Reason int

const (
	ReasonNone    Reason = iota
	ReasonTimeUp         // Countdown reached zero
	ReasonEscaped        // Current platform scrolled out of reach
)

// String returns a display label.
func (r Reason) String() string {
	switch r {
	case ReasonTimeUp:
		return "time up"
	case ReasonEscaped:
		return "fell behind"
	default:
		return ""
	}
}

// Event is a single notification. Fields not relevant to Kind are zero.
type Event struct {
	Kind       Kind
	Char       rune               // CharacterAccepted
	Platform   platforms.Platform // CharacterAccepted, WordComplete (the completed one), Miss
	Next       platforms.Platform // WordComplete: the platform that became current
	Word       string             // Miss
	Difficulty config.Difficulty  // DifficultyChanged
	Reason     Reason             // GameOver
	At         time.Time
}

// Sink receives events. Publish must not block.
type Sink interface {
	Publish(evt Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Publish calls f(evt).
func (f SinkFunc) Publish(evt Event) { f(evt) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder keeps every event in order. Not safe for concurrent use.
type Recorder struct {
	Events []Event
}

// Publish appends evt.
func (r *Recorder) Publish(evt Event) {
	r.Events = append(r.Events, evt)
}

// Kinds returns the recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
