// Package tui provides the Bubble Tea integration for Type Jump.
// It runs the frame loop and the one-second session clock, maps keys and
// hands difficulty fetches off the update loop.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/engine"
)

// fetchTimeout bounds a difficulty fetch started from the keyboard.
const fetchTimeout = 10 * time.Second

// TickMsg is sent to advance the scene by one frame.
type TickMsg time.Time

// SecondMsg drives the session countdown. Gen identifies the chain that
// scheduled it; messages from an older chain are dropped.
type SecondMsg struct {
	Gen int
	At  time.Time
}

// PoolMsg carries the result of a difficulty fetch back to the update loop.
type PoolMsg struct {
	Difficulty config.Difficulty
	Words      []string
	Err        error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// secondCmd schedules the next countdown step for chain gen.
func secondCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg{Gen: gen, At: t}
	})
}

// fetchPoolCmd loads the pool for d outside the update loop.
func fetchPoolCmd(eng *engine.Engine, d config.Difficulty) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		words, err := eng.FetchPool(ctx, d)
		return PoolMsg{Difficulty: d, Words: words, Err: err}
	}
}
