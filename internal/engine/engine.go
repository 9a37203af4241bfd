// Package engine is the game state machine: it checks keystrokes against
// the current platform word, keeps score, combo, accuracy and the countdown,
// and extends the platform ladder near the frontier.
//
// An Engine has a single writer. All mutation goes through Apply, which the
// TUI calls from its update loop; snapshots handed out are never mutated.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/events"
	"github.com/vovakirdan/typejump/internal/platforms"
)

// WordSource supplies the pool for a difficulty.
type WordSource interface {
	FetchWords(ctx context.Context, d config.Difficulty) ([]string, error)
}

// Default virtual viewport, 80x24 cells at the default scene scale.
const (
	defaultViewportW = 1120
	defaultViewportH = 720
)

// Engine owns one session.
type Engine struct {
	cfg    config.TypeJumpConfig
	source WordSource
	sink   events.Sink
	logger *log.Logger
	gen    *platforms.Generator

	state     State
	problems  map[string]struct{}
	viewportH float64
}

// New creates an idle engine. sink and logger may be nil.
func New(cfg config.TypeJumpConfig, source WordSource, sink events.Sink, logger *log.Logger, seed int64) *Engine {
	if sink == nil {
		sink = events.Discard
	}
	e := &Engine{
		cfg:       cfg,
		source:    source,
		sink:      sink,
		logger:    logger,
		gen:       platforms.NewGenerator(cfg.Platforms, defaultViewportW, seed),
		problems:  make(map[string]struct{}),
		viewportH: defaultViewportH,
	}
	e.state = State{
		Phase:      Idle,
		Difficulty: cfg.Difficulty.StartingDifficulty(),
		Accuracy:   100,
		TimeLeft:   cfg.Session.DurationSecs,
		Duration:   cfg.Session.DurationSecs,
	}
	return e
}

// State returns the latest committed snapshot.
func (e *Engine) State() State {
	s := e.state
	s.ProblemWords = append([]string(nil), e.state.ProblemWords...)
	return s
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.TypeJumpConfig {
	return e.cfg
}

// SetViewport sets the virtual world size used to place new platforms.
func (e *Engine) SetViewport(width, height float64) {
	e.gen.SetViewport(width)
	e.viewportH = height
}

// PoolSize returns the number of words in the current pool.
func (e *Engine) PoolSize() int {
	return e.gen.PoolSize()
}

// Apply executes one command and returns what it did.
func (e *Engine) Apply(cmd Command) Outcome {
	var r Result
	switch c := cmd.(type) {
	case KeyPress:
		r = e.keyPress(c)
	case SecondElapsed:
		r = e.tick(c.At)
	case Start:
		r = e.start(c.At)
	case Escape:
		r = e.escape(c.At)
	case ReplacePool:
		r = e.replacePool(c)
	default:
		r = Ignored
	}
	return Outcome{Result: r, State: e.State()}
}

// ProcessKeystroke applies a KeyPress.
func (e *Engine) ProcessKeystroke(key string, now time.Time) Outcome {
	return e.Apply(KeyPress{Key: key, At: now})
}

// Tick applies a SecondElapsed.
func (e *Engine) Tick(now time.Time) Outcome {
	return e.Apply(SecondElapsed{At: now})
}

// Start applies a Start.
func (e *Engine) Start(now time.Time) Outcome {
	return e.Apply(Start{At: now})
}

// Escape applies an Escape.
func (e *Engine) Escape(now time.Time) Outcome {
	return e.Apply(Escape{At: now})
}

// FetchPool asks the word source for a difficulty's pool without touching
// the engine, so it can run off the update loop.
func (e *Engine) FetchPool(ctx context.Context, d config.Difficulty) ([]string, error) {
	if e.source == nil {
		return nil, errors.New("engine: no word source")
	}
	words, err := e.source.FetchWords(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("engine: fetch %s words: %w", d, err)
	}
	return words, nil
}

// ChangeDifficulty records d and swaps in its pool. Counters, the cursor
// and platforms already on screen are untouched, so only platforms
// generated afterwards use the new words. On fetch failure the difficulty
// is still recorded and the old pool stays.
func (e *Engine) ChangeDifficulty(ctx context.Context, d config.Difficulty) error {
	words, err := e.FetchPool(ctx, d)
	e.Apply(ReplacePool{Difficulty: d, Words: words})
	return err
}

// Load fetches the pool for the stored difficulty and, while idle, lays
// out a preview ladder. The preview is built even when the fetch fails.
func (e *Engine) Load(ctx context.Context) error {
	words, err := e.FetchPool(ctx, e.state.Difficulty)
	if len(words) > 0 {
		e.gen.SetPool(words)
	}
	if e.state.Phase == Idle {
		e.state.Platforms = e.gen.Generate(e.startY(), e.cfg.Platforms.PreviewCount, true)
	}
	return err
}

func (e *Engine) startY() float64 {
	return e.viewportH - e.cfg.Platforms.StartOffset
}

func (e *Engine) start(now time.Time) Result {
	e.gen.Shuffle()
	e.problems = make(map[string]struct{})

	e.state = State{
		Phase:      Playing,
		Difficulty: e.state.Difficulty,
		Accuracy:   100,
		TimeLeft:   e.cfg.Session.DurationSecs,
		Duration:   e.cfg.Session.DurationSecs,
		Platforms:  e.gen.Generate(e.startY(), e.cfg.Platforms.InitialCount, true),
		StartedAt:  now,
	}

	if e.logger != nil {
		e.logger.Debug("session started", "difficulty", e.state.Difficulty, "pool", e.gen.PoolSize())
	}
	e.sink.Publish(events.Event{Kind: events.GameStarted, Difficulty: e.state.Difficulty, At: now})
	return Started
}

func (e *Engine) keyPress(c KeyPress) Result {
	if c.Key == e.cfg.Session.StartKey && e.state.Phase != Playing {
		return e.start(c.At)
	}
	if e.state.Phase != Playing || !core.IsPrintable(c.Key) {
		return Ignored
	}

	list := platforms.Clone(e.state.Platforms)
	idx := platforms.CurrentIndex(list)
	if idx < 0 {
		return Ignored
	}
	active := &list[idx]
	want, ok := active.Next()
	if !ok {
		return Ignored
	}

	key := []rune(strings.ToUpper(c.Key))[0]
	e.state.TotalKeys++

	if key != unicode.ToUpper(want) {
		e.state.Accuracy = Accuracy(e.state.CorrectKeys, e.state.TotalKeys)
		e.state.Combo = 0
		if _, seen := e.problems[active.Word]; !seen {
			e.problems[active.Word] = struct{}{}
			e.state.ProblemWords = append(append([]string(nil), e.state.ProblemWords...), active.Word)
		}
		e.state.Platforms = list
		e.sink.Publish(events.Event{Kind: events.Miss, Platform: *active, Word: active.Word, At: c.At})
		return Missed
	}

	prior := e.state.Combo
	e.state.CorrectKeys++
	e.state.Accuracy = Accuracy(e.state.CorrectKeys, e.state.TotalKeys)
	e.state.WPM = WPM(e.state.CorrectKeys, e.state.Elapsed())
	e.state.Combo++
	e.state.MaxCombo = max(e.state.MaxCombo, e.state.Combo)
	e.state.Score += Points(e.cfg.Scoring.BasePoints, e.cfg.Scoring.ComboStep, prior)
	active.CompletedChars++
	e.sink.Publish(events.Event{Kind: events.CharacterAccepted, Char: key, Platform: *active, At: c.At})

	if !active.Done() {
		e.state.Platforms = list
		return Accepted
	}

	active.IsCurrent = false
	completed := *active
	next := idx + 1
	if next > len(list)-e.cfg.Platforms.ExtendThreshold {
		lastY := list[len(list)-1].Y
		more := e.gen.Generate(lastY-e.cfg.Platforms.Spacing, e.cfg.Platforms.ExtendCount, false)
		list = append(list, more...)
	}

	evt := events.Event{Kind: events.WordComplete, Platform: completed, At: c.At}
	if next < len(list) {
		list[next].IsCurrent = true
		evt.Next = list[next]
	}
	e.state.Platforms = list
	e.sink.Publish(evt)
	return Completed
}

func (e *Engine) tick(now time.Time) Result {
	if e.state.Phase != Playing {
		return Ignored
	}
	if e.state.TimeLeft <= 1 {
		e.state.TimeLeft = 0
		e.end(now, events.ReasonTimeUp)
		return Ended
	}
	e.state.TimeLeft--
	e.state.WPM = WPM(e.state.CorrectKeys, e.state.Elapsed())
	return Ticked
}

func (e *Engine) escape(now time.Time) Result {
	if e.state.Phase != Playing {
		return Ignored
	}
	e.end(now, events.ReasonEscaped)
	return Ended
}

func (e *Engine) end(now time.Time, reason events.Reason) {
	e.state.Phase = GameOver
	e.state.Reason = reason
	e.state.EndedAt = now
	if e.logger != nil {
		e.logger.Debug("session over", "reason", reason, "score", e.state.Score, "wpm", e.state.WPM, "accuracy", e.state.Accuracy)
	}
	e.sink.Publish(events.Event{Kind: events.GameOver, Reason: reason, At: now})
}

func (e *Engine) replacePool(c ReplacePool) Result {
	changed := c.Difficulty != e.state.Difficulty
	e.state.Difficulty = c.Difficulty
	if len(c.Words) > 0 {
		e.gen.SetPool(c.Words)
	}
	if changed {
		e.sink.Publish(events.Event{Kind: events.DifficultyChanged, Difficulty: c.Difficulty})
	}
	if len(c.Words) == 0 {
		return Ignored
	}
	return PoolReplaced
}
