package typejump

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/events"
)

const frame = 1.0 / 60

var now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type staticSource []string

func (s staticSource) FetchWords(context.Context, config.Difficulty) ([]string, error) {
	return append([]string(nil), s...), nil
}

func newTestGame(t *testing.T, cfg config.TypeJumpConfig, words ...string) *Game {
	t.Helper()
	bus := events.NewBus()
	eng := engine.New(cfg, staticSource(words), bus, nil, 1)
	g := New(eng, bus)
	t.Cleanup(g.Close)

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g.Reset(rt)
	if err := eng.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	g.Reset(rt)
	return g
}

func render(g *Game) string {
	dst := core.NewScreen(80, 24)
	g.Render(dst)
	return dst.String()
}

func TestIdleScreen(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "glacier")
	out := render(g)

	for _, want := range []string{"TYPE JUMP", "5-MINUTE", "Press ENTER", "Beginner"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen missing %q", want)
		}
	}
	if len(g.State().Platforms) != 8 {
		t.Errorf("expected preview ladder, got %d platforms", len(g.State().Platforms))
	}
}

func TestStartAndType(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "frost")
	if out := g.HandleKey("enter", now); out.Result != engine.Started {
		t.Fatalf("enter should start, got %s", out.Result)
	}
	g.Step(frame, now)

	out := render(g)
	if !strings.Contains(out, "FROST") {
		t.Error("current word should be on screen")
	}
	if !strings.Contains(out, "TIME 5:00") {
		t.Error("HUD should show the countdown")
	}

	g.HandleKey("f", now)
	g.Step(frame, now)
	if len(g.projectiles) != 1 {
		t.Errorf("expected a projectile for the typed letter, got %d", len(g.projectiles))
	}
	if len(g.particles) != 3 {
		t.Errorf("expected 3 particles, got %d", len(g.particles))
	}

	for i := 0; i < 10; i++ {
		g.Step(frame, now)
	}
	if len(g.projectiles) != 0 {
		t.Error("projectile should land within a few frames")
	}
}

func TestWordCompleteJumps(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "ab")
	g.HandleKey("enter", now)
	g.Step(frame, now)
	startY := g.player.y

	g.HandleKey("a", now)
	g.HandleKey("b", now)
	g.Step(frame, now)

	next, ok := g.State().Current()
	if !ok {
		t.Fatal("expected a current platform")
	}
	if !g.player.jumping() {
		t.Fatal("climber should be mid-jump")
	}
	if g.player.targetX != next.CenterX() || g.player.targetY != next.Y-playerSize {
		t.Errorf("jump target (%v,%v) does not match next platform", g.player.targetX, g.player.targetY)
	}

	for i := 0; i < 60; i++ {
		g.Step(frame, now)
	}
	if g.player.jumping() {
		t.Error("jump should finish within a second")
	}
	if g.player.y >= startY {
		t.Errorf("climber should be higher after the jump: %v >= %v", g.player.y, startY)
	}
}

func TestMissEffects(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "ice")
	g.HandleKey("enter", now)
	g.HandleKey("z", now)
	g.Step(frame, now)

	if g.shake <= 0 {
		t.Error("miss should shake the camera")
	}
	if len(g.texts) != 1 || g.texts[0].text != "MISS" {
		t.Errorf("expected MISS text, got %+v", g.texts)
	}

	for i := 0; i < 60; i++ {
		g.Step(frame, now)
	}
	if len(g.texts) != 0 || g.shake != 0 {
		t.Error("miss effects should fade")
	}
}

func TestFallingBehindEndsSession(t *testing.T) {
	cfg := config.DefaultTypeJumpConfig()
	cfg.Difficulty.Default = "expert"
	g := newTestGame(t, cfg, "permafrost")
	g.HandleKey("enter", now)

	for i := 0; i < 60*60 && g.State().Phase == engine.Playing; i++ {
		g.Step(frame, now)
	}

	s := g.State()
	if s.Phase != engine.GameOver || s.Reason != events.ReasonEscaped {
		t.Fatalf("expected escape game over, got %s (%s)", s.Phase, s.Reason)
	}
	if !strings.Contains(render(g), "TRIAL COMPLETE") {
		t.Error("game over report should be shown")
	}
}

func TestKeepingUpAvoidsEscape(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "a")
	g.HandleKey("enter", now)

	// One word every half second outpaces the beginner scroll.
	for i := 0; i < 60*20; i++ {
		if i%30 == 0 {
			g.HandleKey("a", now)
		}
		g.Step(frame, now)
	}
	if g.State().Phase != engine.Playing {
		t.Fatalf("steady typing should keep the session alive, got %s", g.State().Phase)
	}
}

func TestReportListsProblemWords(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "snow")
	g.HandleKey("enter", now)
	g.HandleKey("x", now)
	g.Engine().Escape(now)
	g.Step(frame, now)

	out := render(g)
	for _, want := range []string{"TRIAL COMPLETE", "fell behind", "WORDS TO PRACTICE", "SNOW", "ENTER"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestSecondUpdatesClock(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "cold")
	g.HandleKey("enter", now)
	g.Second(now)
	g.Step(frame, now)

	if g.State().TimeLeft != 299 {
		t.Errorf("expected 299s left, got %d", g.State().TimeLeft)
	}
	if !strings.Contains(render(g), "TIME 4:59") {
		t.Error("HUD should show 4:59")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "void")
	g.HandleKey("enter", now)
	g.HandleKey("v", now)

	g.Resize(100, 30)
	g.Step(frame, now)

	s := g.State()
	if s.Phase != engine.Playing || s.CorrectKeys != 1 {
		t.Errorf("resize should not touch the session: %s, %d correct", s.Phase, s.CorrectKeys)
	}
	if g.worldW != 1400 || g.worldH != 900 {
		t.Errorf("unexpected world size %vx%v", g.worldW, g.worldH)
	}
}

func TestHUDShowsMuteAndStatus(t *testing.T) {
	g := newTestGame(t, config.DefaultTypeJumpConfig(), "grid")
	g.SetMuted(true)
	if !strings.Contains(render(g), "[muted]") {
		t.Error("HUD should show mute state")
	}

	g.Flash("saved shot.txt")
	if !strings.Contains(render(g), "saved shot.txt") {
		t.Error("status message should replace the hint line")
	}
	for i := 0; i < 3*60; i++ {
		g.Step(frame, now)
	}
	if strings.Contains(render(g), "saved shot.txt") {
		t.Error("status message should expire")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{300, "5:00"}, {59, "0:59"}, {61, "1:01"}, {0, "0:00"}, {-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestWrapWords(t *testing.T) {
	got := wrapWords([]string{"ALPHA", "BETA", "GAMMA", "DELTA"}, 12)
	want := []string{"ALPHA  BETA", "GAMMA  DELTA"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
