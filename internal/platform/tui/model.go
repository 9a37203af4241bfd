package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/games/typejump"
)

// Muter toggles audio output. *audio.Player satisfies it.
type Muter interface {
	ToggleMute() bool
}

// Options configures a game model.
type Options struct {
	Runtime       core.RuntimeConfig
	StartKey      string
	Audio         Muter       // nil disables the mute key
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty means ~/.typejump/screenshots
}

// Model is the Bubble Tea model for running a session.
type Model struct {
	game      *typejump.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	audio     Muter
	logger    *log.Logger
	shotDir   string
	lastFrame time.Time
	secondGen int  // Current countdown chain
	fetching  bool // A difficulty fetch is in flight
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset for opts.Runtime.
func NewModel(game *typejump.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(opts.StartKey),
		audio:   opts.Audio,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}
}

// Init starts the frame loop. The countdown starts with the session.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SecondMsg:
		return m.handleSecond(msg)

	case PoolMsg:
		return m.handlePool(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, press := range m.keys.MapKey(msg) {
		switch press.Action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit

		case core.ActionBack:
			m.back = true
			return m, tea.Quit

		case core.ActionScreenshot:
			path, err := m.saveScreenshot(now)
			if err != nil {
				m.logger.Warn("screenshot failed", "err", err)
				m.game.Flash("screenshot failed")
				continue
			}
			m.game.Flash("saved " + filepath.Base(path))

		case core.ActionMute:
			if m.audio == nil {
				m.game.Flash("audio unavailable")
				continue
			}
			muted := m.audio.ToggleMute()
			m.game.SetMuted(muted)

		case core.ActionCycleDifficulty:
			if m.fetching {
				continue
			}
			m.fetching = true
			next := m.game.State().Difficulty.Next()
			m.game.Flash("loading " + next.String() + " words")
			cmds = append(cmds, fetchPoolCmd(m.game.Engine(), next))

		case core.ActionStart, core.ActionType:
			out := m.game.HandleKey(press.Key, now)
			if out.Result == engine.Started {
				m.secondGen++
				cmds = append(cmds, secondCmd(m.secondGen))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the scene by the real time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	m.game.Step(dt, now)
	return m, tickCmd(m.config.TickRate)
}

// handleSecond counts the clock down and reschedules while the session
// lasts. Stale chains from an earlier session are dropped.
func (m Model) handleSecond(msg SecondMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.secondGen || m.game.State().Phase != engine.Playing {
		return m, nil
	}
	out := m.game.Second(msg.At)
	if out.State.Phase != engine.Playing {
		return m, nil
	}
	return m, secondCmd(m.secondGen)
}

// handlePool applies a finished difficulty fetch.
func (m Model) handlePool(msg PoolMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	if msg.Err != nil {
		m.logger.Warn("difficulty fetch failed", "difficulty", msg.Difficulty, "err", msg.Err)
	}

	out := m.game.ReplacePool(msg.Difficulty, msg.Words)
	if out.Result == engine.PoolReplaced {
		m.game.Flash(fmt.Sprintf("%s: %d words", msg.Difficulty, len(msg.Words)))
	} else {
		m.game.Flash(msg.Difficulty.String() + ": keeping current words")
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot(now time.Time) (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot dir: %w", err)
		}
		dir = filepath.Join(home, ".typejump", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the final engine snapshot.
func (m Model) State() engine.State {
	return m.game.State()
}

// Quitting reports whether the player asked to exit the program.
func (m Model) Quitting() bool {
	return m.quitting
}

// Result is how a session run ended.
type Result struct {
	State engine.State
	Quit  bool // ctrl+c, leave the program instead of returning to a menu
}

// Run starts the Bubble Tea program with the given game.
func Run(game *typejump.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{State: game.State()}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{State: game.State(), Quit: true}, nil
	}
	return Result{State: m.State(), Quit: m.Quitting()}, nil
}
