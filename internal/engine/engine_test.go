package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/events"
	"github.com/vovakirdan/typejump/internal/platforms"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// poolSource serves a fixed pool per difficulty.
type poolSource struct {
	pools map[config.Difficulty][]string
	err   error
}

func (p poolSource) FetchWords(_ context.Context, d config.Difficulty) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return append([]string(nil), p.pools[d]...), nil
}

func newTestEngine(t *testing.T, words ...string) (*Engine, *events.Recorder) {
	t.Helper()
	src := poolSource{pools: map[config.Difficulty][]string{config.Beginner: words}}
	rec := &events.Recorder{}
	e := New(config.DefaultTypeJumpConfig(), src, rec, nil, 1)
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return e, rec
}

func typeWord(e *Engine, word string) {
	for _, r := range word {
		e.ProcessKeystroke(string(r), t0)
	}
}

func currentWord(t *testing.T, e *Engine) string {
	t.Helper()
	p, ok := e.State().Current()
	if !ok {
		t.Fatal("no current platform")
	}
	return p.Word
}

func TestLoadBuildsPreview(t *testing.T) {
	e, _ := newTestEngine(t, "alpha")
	s := e.State()

	if s.Phase != Idle {
		t.Fatalf("expected idle, got %s", s.Phase)
	}
	if len(s.Platforms) != 8 {
		t.Errorf("expected 8 preview platforms, got %d", len(s.Platforms))
	}
	if s.Accuracy != 100 || s.TimeLeft != 300 {
		t.Errorf("unexpected idle stats: accuracy=%d timeLeft=%d", s.Accuracy, s.TimeLeft)
	}
}

func TestLoadFailureStillPreviews(t *testing.T) {
	src := poolSource{err: errors.New("offline")}
	e := New(config.DefaultTypeJumpConfig(), src, nil, nil, 1)

	if err := e.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	s := e.State()
	if len(s.Platforms) != 8 || s.Platforms[0].Word != "JUMP" {
		t.Errorf("expected JUMP preview, got %d platforms", len(s.Platforms))
	}
}

func TestIgnoredWhenNotPlaying(t *testing.T) {
	e, rec := newTestEngine(t, "the")

	if out := e.ProcessKeystroke("t", t0); out.Result != Ignored {
		t.Errorf("idle keystroke should be ignored, got %s", out.Result)
	}
	if out := e.Tick(t0); out.Result != Ignored {
		t.Errorf("idle tick should be ignored, got %s", out.Result)
	}
	if out := e.Escape(t0); out.Result != Ignored {
		t.Errorf("idle escape should be ignored, got %s", out.Result)
	}
	if s := e.State(); s.TotalKeys != 0 || s.TimeLeft != 300 {
		t.Errorf("idle commands mutated state: %+v", s)
	}
	if len(rec.Events) != 0 {
		t.Errorf("idle commands published %v", rec.Kinds())
	}
}

func TestStartKey(t *testing.T) {
	e, rec := newTestEngine(t, "the")

	out := e.ProcessKeystroke("enter", t0)
	if out.Result != Started || out.State.Phase != Playing {
		t.Fatalf("enter should start, got %s in %s", out.Result, out.State.Phase)
	}
	if len(out.State.Platforms) != 10 {
		t.Errorf("expected 10 initial platforms, got %d", len(out.State.Platforms))
	}
	if rec.Count(events.GameStarted) != 1 {
		t.Error("expected GameStarted event")
	}

	if out := e.ProcessKeystroke("enter", t0); out.Result != Ignored {
		t.Errorf("enter while playing should be ignored, got %s", out.Result)
	}
}

func TestNonPrintableKeysIgnored(t *testing.T) {
	e, _ := newTestEngine(t, "the")
	e.Start(t0)

	for _, key := range []string{"tab", "shift", "ctrl+a", "", "ab", "\x00"} {
		if out := e.ProcessKeystroke(key, t0); out.Result != Ignored {
			t.Errorf("key %q should be ignored, got %s", key, out.Result)
		}
	}
	if s := e.State(); s.TotalKeys != 0 {
		t.Errorf("ignored keys counted: %d", s.TotalKeys)
	}
}

func TestScenarioTHE(t *testing.T) {
	e, rec := newTestEngine(t, "the")
	e.Start(t0)
	word := currentWord(t, e)
	first := e.State().Platforms[0]

	score := 0
	for i, r := range word {
		out := e.ProcessKeystroke(string(r), t0)
		if out.State.Score-score != 10 {
			t.Errorf("key %d: expected +10 points, got +%d", i, out.State.Score-score)
		}
		score = out.State.Score
	}

	s := e.State()
	if s.Platforms[0].ID != first.ID {
		t.Fatal("platform order changed")
	}
	if s.Platforms[0].CompletedChars != 3 || s.Platforms[0].IsCurrent {
		t.Errorf("first platform should be complete and inactive: %+v", s.Platforms[0])
	}
	if !s.Platforms[1].IsCurrent {
		t.Error("second platform should be current")
	}
	if rec.Count(events.CharacterAccepted) != 3 || rec.Count(events.WordComplete) != 1 {
		t.Errorf("unexpected events %v", rec.Kinds())
	}
}

func TestScenarioComboTier(t *testing.T) {
	e, _ := newTestEngine(t, "abcdefgh")
	e.Start(t0)

	var gains []int
	prev := 0
	for _, r := range "ABCDEF" {
		s := e.ProcessKeystroke(string(r), t0).State
		gains = append(gains, s.Score-prev)
		prev = s.Score
	}

	want := []int{10, 10, 10, 10, 10, 20}
	for i := range want {
		if gains[i] != want[i] {
			t.Errorf("keystroke %d: expected +%d, got +%d", i+1, want[i], gains[i])
		}
	}
}

func TestScenarioMissOnJUMP(t *testing.T) {
	e, rec := newTestEngine(t)
	e.Start(t0)

	e.ProcessKeystroke("x", t0)
	s := e.ProcessKeystroke("z", t0).State

	if currentWord(t, e) != "JUMP" {
		t.Fatalf("expected JUMP, got %q", currentWord(t, e))
	}
	if s.TotalKeys != 2 || s.CorrectKeys != 0 {
		t.Errorf("expected 2 total / 0 correct, got %d / %d", s.TotalKeys, s.CorrectKeys)
	}
	if s.Combo != 0 {
		t.Errorf("combo should be 0, got %d", s.Combo)
	}
	if len(s.ProblemWords) != 1 || s.ProblemWords[0] != "JUMP" {
		t.Errorf("expected JUMP once in problem words, got %v", s.ProblemWords)
	}
	if s.Accuracy != 0 {
		t.Errorf("expected 0%% accuracy, got %d", s.Accuracy)
	}
	if s.Platforms[0].CompletedChars != 0 {
		t.Error("miss should not advance the platform")
	}
	if rec.Count(events.Miss) != 2 {
		t.Errorf("expected 2 miss events, got %d", rec.Count(events.Miss))
	}
}

func TestMissResetsComboKeepsScore(t *testing.T) {
	e, _ := newTestEngine(t, "abcdefgh")
	e.Start(t0)
	typeWord(e, "ABC")
	before := e.State()

	s := e.ProcessKeystroke("q", t0).State
	if s.Combo != 0 || s.MaxCombo != 3 {
		t.Errorf("expected combo 0 max 3, got %d/%d", s.Combo, s.MaxCombo)
	}
	if s.Score != before.Score {
		t.Errorf("score changed on miss: %d -> %d", before.Score, s.Score)
	}
	if s.Accuracy != 75 {
		t.Errorf("expected 75%% accuracy, got %d", s.Accuracy)
	}
}

func TestScenarioFinalTick(t *testing.T) {
	e, rec := newTestEngine(t, "the")
	e.Start(t0)

	for i := 0; i < 299; i++ {
		if out := e.Tick(t0); out.Result != Ticked {
			t.Fatalf("tick %d: expected ticked, got %s", i, out.Result)
		}
	}
	if s := e.State(); s.TimeLeft != 1 {
		t.Fatalf("expected 1 second left, got %d", s.TimeLeft)
	}

	out := e.Tick(t0)
	if out.Result != Ended || out.State.Phase != GameOver {
		t.Fatalf("final tick should end the game, got %s in %s", out.Result, out.State.Phase)
	}
	if out.State.TimeLeft != 0 || out.State.Reason != events.ReasonTimeUp {
		t.Errorf("expected timeLeft 0 and time-up reason, got %d %s", out.State.TimeLeft, out.State.Reason)
	}
	if rec.Count(events.GameOver) != 1 {
		t.Errorf("expected one GameOver event")
	}

	after := e.Tick(t0)
	if after.Result != Ignored || after.State.TimeLeft != 0 {
		t.Errorf("tick after game over mutated state: %s, %d", after.Result, after.State.TimeLeft)
	}
	if out := e.ProcessKeystroke("t", t0); out.Result != Ignored {
		t.Errorf("keystroke after game over should be ignored, got %s", out.Result)
	}
}

func TestTickRecomputesWPM(t *testing.T) {
	e, _ := newTestEngine(t, "abcdefghij")
	e.Start(t0)

	// Keystrokes at elapsed 0 report 0 WPM.
	s := e.ProcessKeystroke("a", t0).State
	if s.WPM != 0 {
		t.Errorf("expected 0 wpm at session start, got %d", s.WPM)
	}
	typeWord(e, "BCDEFGHIJ")

	for i := 0; i < 30; i++ {
		e.Tick(t0)
	}
	s = e.State()
	// 10 correct keys = 2 words in half a minute.
	if s.WPM != 4 {
		t.Errorf("expected 4 wpm after 30s, got %d", s.WPM)
	}
	if WPM(s.CorrectKeys, s.Elapsed()) != s.WPM {
		t.Error("tick and keystroke paths disagree on wpm")
	}
}

func TestEscape(t *testing.T) {
	e, rec := newTestEngine(t, "the")
	e.Start(t0)

	out := e.Escape(t0)
	if out.Result != Ended || out.State.Reason != events.ReasonEscaped {
		t.Fatalf("expected escape to end the game, got %s %s", out.Result, out.State.Reason)
	}
	if rec.Count(events.GameOver) != 1 {
		t.Error("expected GameOver event")
	}
}

func TestRestartResetsSession(t *testing.T) {
	e, _ := newTestEngine(t, "the")
	e.Start(t0)
	typeWord(e, "TX")
	e.Tick(t0)
	e.Escape(t0)

	out := e.ProcessKeystroke("enter", t0.Add(time.Minute))
	s := out.State
	if out.Result != Started || s.Phase != Playing {
		t.Fatalf("enter after game over should restart, got %s", out.Result)
	}
	if s.Score != 0 || s.TotalKeys != 0 || s.Combo != 0 || s.MaxCombo != 0 || s.WPM != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
	if s.Accuracy != 100 || s.TimeLeft != 300 || len(s.ProblemWords) != 0 {
		t.Errorf("session not reset: accuracy=%d timeLeft=%d problems=%v", s.Accuracy, s.TimeLeft, s.ProblemWords)
	}
	if s.Reason != events.ReasonNone {
		t.Errorf("reason should clear on restart, got %s", s.Reason)
	}
	if len(s.Platforms) != 10 || s.Platforms[0].CompletedChars != 0 {
		t.Error("platforms not regenerated")
	}

	// A word missed in the old session counts again.
	s = e.ProcessKeystroke("x", t0).State
	if len(s.ProblemWords) != 1 {
		t.Errorf("expected fresh problem word tracking, got %v", s.ProblemWords)
	}
}

func TestFrontierExtension(t *testing.T) {
	e, rec := newTestEngine(t, "ab")
	e.Start(t0)
	initial := e.State().Platforms

	// Completing indices 0..5 stays clear of the frontier.
	for i := 0; i < 6; i++ {
		typeWord(e, "AB")
	}
	if n := len(e.State().Platforms); n != 10 {
		t.Fatalf("expected no extension yet, got %d platforms", n)
	}

	typeWord(e, "AB")
	s := e.State()
	if len(s.Platforms) != 15 {
		t.Fatalf("expected 5 more platforms, got %d", len(s.Platforms))
	}
	if got, want := s.Platforms[10].Y, initial[9].Y-180; got != want {
		t.Errorf("extension should start one spacing above the last, got y=%v want %v", got, want)
	}
	for _, p := range s.Platforms[10:] {
		if p.IsCurrent {
			t.Error("extended platforms should not start current")
		}
	}
	if platforms.CurrentIndex(s.Platforms) != 7 {
		t.Errorf("expected platform 7 current, got %d", platforms.CurrentIndex(s.Platforms))
	}
	if rec.Count(events.WordComplete) != 7 {
		t.Errorf("expected 7 word completions, got %d", rec.Count(events.WordComplete))
	}
}

func TestSmallestThresholdKeepsCurrentPlatform(t *testing.T) {
	cfg := config.DefaultTypeJumpConfig()
	cfg.Platforms.InitialCount = 2
	cfg.Platforms.ExtendThreshold = 1
	src := poolSource{pools: map[config.Difficulty][]string{config.Beginner: {"ab"}}}
	e := New(cfg, src, events.Discard, nil, 1)
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	e.Start(t0)

	for i := 0; i < 5; i++ {
		typeWord(e, "AB")
		s := e.State()
		if _, ok := s.Current(); !ok {
			t.Fatalf("word %d: no current platform among %d", i, len(s.Platforms))
		}
		if s.Phase != Playing {
			t.Fatalf("word %d: phase = %s", i, s.Phase)
		}
	}
}

func TestLadderNeverRunsOut(t *testing.T) {
	e, _ := newTestEngine(t, "a")
	e.Start(t0)

	for i := 0; i < 100; i++ {
		if out := e.ProcessKeystroke("a", t0); out.Result != Completed {
			t.Fatalf("word %d: expected completed, got %s", i, out.Result)
		}
	}
	if _, ok := e.State().Current(); !ok {
		t.Error("ladder should always have a current platform")
	}
}

func TestSnapshotsAreNotAliased(t *testing.T) {
	e, _ := newTestEngine(t, "abc")
	e.Start(t0)

	before := e.State()
	e.ProcessKeystroke("a", t0)
	e.ProcessKeystroke("x", t0)
	after := e.State()

	if before.Platforms[0].CompletedChars != 0 {
		t.Error("earlier snapshot saw a later keystroke")
	}
	if len(before.ProblemWords) != 0 {
		t.Error("earlier snapshot saw a later problem word")
	}
	if &before.Platforms[0] == &after.Platforms[0] {
		t.Error("keystroke did not commit a fresh platform slice")
	}

	after.ProblemWords[0] = "HACKED"
	if e.State().ProblemWords[0] != "ABC" {
		t.Error("snapshot problem words alias engine state")
	}
}

func TestScenarioDifficultyChangeMidSession(t *testing.T) {
	src := poolSource{pools: map[config.Difficulty][]string{
		config.Beginner: {"aaa"},
		config.Expert:   {"zzzzzzzz"},
	}}
	rec := &events.Recorder{}
	e := New(config.DefaultTypeJumpConfig(), src, rec, nil, 1)
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	e.Start(t0)
	typeWord(e, "AA")
	before := e.State()

	if err := e.ChangeDifficulty(context.Background(), config.Expert); err != nil {
		t.Fatalf("change difficulty: %v", err)
	}
	s := e.State()
	if s.Difficulty != config.Expert {
		t.Errorf("expected expert, got %s", s.Difficulty)
	}
	if s.Score != before.Score || s.CorrectKeys != before.CorrectKeys || s.Combo != before.Combo {
		t.Error("difficulty change touched counters")
	}
	for i, p := range s.Platforms {
		if p.Word != "AAA" {
			t.Errorf("existing platform %d changed to %q", i, p.Word)
		}
	}
	if rec.Count(events.DifficultyChanged) != 1 {
		t.Error("expected DifficultyChanged event")
	}

	typeWord(e, "A")
	for i := 0; i < 6; i++ {
		typeWord(e, "AAA")
	}
	s = e.State()
	if len(s.Platforms) != 15 {
		t.Fatalf("expected extension, got %d platforms", len(s.Platforms))
	}
	for i, p := range s.Platforms[10:] {
		if p.Word != "ZZZZZZZZ" {
			t.Errorf("new platform %d should use the expert pool, got %q", i, p.Word)
		}
	}
}

func TestChangeDifficultyFetchFailure(t *testing.T) {
	e, _ := newTestEngine(t, "the")
	e.source = poolSource{err: errors.New("offline")}

	if err := e.ChangeDifficulty(context.Background(), config.Expert); err == nil {
		t.Fatal("expected error")
	}
	if e.State().Difficulty != config.Expert {
		t.Error("difficulty should be recorded even when the fetch fails")
	}
	if e.PoolSize() != 1 {
		t.Errorf("old pool should stay, size %d", e.PoolSize())
	}
}

// TestInvariantsUnderRandomInput drives the engine with random keys and
// ticks and checks the session invariants after every command.
func TestInvariantsUnderRandomInput(t *testing.T) {
	e, _ := newTestEngine(t, "the", "quick", "brown", "fox", "jumps")
	e.Start(t0)

	rng := rand.New(rand.NewSource(99))
	keys := []string{"t", "h", "e", "q", "u", "i", "c", "k", "b", "r", "o", "w", "n", "f", "x", "j", "m", "p", "s", "z"}

	progress := make(map[string]int)
	streak, maxCombo, score := 0, 0, 0
	seenProblem := make(map[string]bool)

	for step := 0; step < 3000; step++ {
		var out Outcome
		if rng.Intn(20) == 0 {
			out = e.Tick(t0)
		} else {
			out = e.ProcessKeystroke(keys[rng.Intn(len(keys))], t0)
		}
		s := out.State

		switch out.Result {
		case Accepted, Completed:
			streak++
		case Missed:
			streak = 0
		}

		if s.TotalKeys > 0 && s.Accuracy != Accuracy(s.CorrectKeys, s.TotalKeys) {
			t.Fatalf("step %d: accuracy %d != formula", step, s.Accuracy)
		}
		if s.Combo != streak {
			t.Fatalf("step %d: combo %d, streak %d", step, s.Combo, streak)
		}
		if s.MaxCombo < maxCombo {
			t.Fatalf("step %d: maxCombo decreased", step)
		}
		maxCombo = s.MaxCombo
		if s.Score < score {
			t.Fatalf("step %d: score decreased", step)
		}
		score = s.Score

		current := 0
		for _, p := range s.Platforms {
			if p.CompletedChars < progress[p.ID] || p.CompletedChars > p.Len() {
				t.Fatalf("step %d: platform %s progress %d (was %d)", step, p.Word, p.CompletedChars, progress[p.ID])
			}
			progress[p.ID] = p.CompletedChars
			if p.IsCurrent {
				current++
			}
		}
		if s.Phase == Playing && current != 1 {
			t.Fatalf("step %d: %d current platforms", step, current)
		}

		clear(seenProblem)
		for _, w := range s.ProblemWords {
			if seenProblem[w] {
				t.Fatalf("step %d: duplicate problem word %q", step, w)
			}
			seenProblem[w] = true
		}

		if s.Phase == GameOver {
			break
		}
	}
}

func TestDerivedMetrics(t *testing.T) {
	tests := []struct {
		name             string
		correct, total   int
		elapsed          int
		wantAcc, wantWPM int
	}{
		{"no keys", 0, 0, 0, 100, 0},
		{"perfect", 10, 10, 60, 100, 2},
		{"two thirds", 2, 3, 0, 67, 0},
		{"rounding", 1, 8, 120, 13, 0},
		{"fast", 250, 260, 60, 96, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.correct, tt.total); got != tt.wantAcc {
				t.Errorf("accuracy: expected %d, got %d", tt.wantAcc, got)
			}
			if got := WPM(tt.correct, tt.elapsed); got != tt.wantWPM {
				t.Errorf("wpm: expected %d, got %d", tt.wantWPM, got)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct{ prior, want int }{
		{0, 10}, {4, 10}, {5, 20}, {9, 20}, {10, 30}, {27, 60},
	}
	for _, tt := range tests {
		if got := Points(10, 5, tt.prior); got != tt.want {
			t.Errorf("Points(prior=%d): expected %d, got %d", tt.prior, tt.want, got)
		}
	}
}
