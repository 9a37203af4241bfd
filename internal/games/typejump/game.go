// Package typejump is the presentation side of the game: it follows the
// engine's events to animate the climber, scrolls the camera, reports when
// the current platform falls out of reach and draws everything into a
// core.Screen. It holds no Bubble Tea dependency.
package typejump

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/events"
)

// Player sprite size in world units.
const (
	playerSize = 45
	playerHalf = 22
)

// Game renders one engine. It owns a bus subscription that it drains every
// frame; the engine itself is only mutated through the methods below.
type Game struct {
	eng     *engine.Engine
	sub     *events.Subscription
	cfg     config.TypeJumpConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	worldW, worldH float64 // Viewport size in world units

	state   engine.State
	player  player
	cameraY float64
	scrollY float64 // Highest camera position auto-scroll has reached

	particles   []particle
	projectiles []projectile
	texts       []floatingText
	shake       float64

	muted      bool
	status     string
	statusLeft float64 // Seconds the status line stays up
}

// New creates a game around eng, subscribing to bus for effects.
func New(eng *engine.Engine, bus *events.Bus) *Game {
	return &Game{
		eng:   eng,
		sub:   bus.Subscribe(256),
		cfg:   eng.Config(),
		state: eng.State(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ID returns the identifier used for screenshots and logs.
func (g *Game) ID() string {
	return "typejump"
}

// Reset sizes the scene for a screen and puts the climber on the current
// platform. The session itself is left alone.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.Resize(rt.ScreenW, rt.ScreenH)

	g.particles = nil
	g.projectiles = nil
	g.texts = nil
	g.shake = 0
	g.state = g.eng.State()
	g.placePlayer()
}

// Resize updates the viewport after a terminal resize.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.worldW = float64(cols) * g.cfg.Scene.UnitsPerColumn
	g.worldH = float64(rows) * g.cfg.Scene.UnitsPerRow
	g.eng.SetViewport(g.worldW, g.worldH)
}

// Engine returns the engine being rendered.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// State returns the latest engine snapshot seen by the scene.
func (g *Game) State() engine.State {
	return g.state
}

// HandleKey routes a key to the engine.
func (g *Game) HandleKey(key string, now time.Time) engine.Outcome {
	out := g.eng.ProcessKeystroke(key, now)
	g.state = out.State
	return out
}

// Second advances the countdown by one second.
func (g *Game) Second(now time.Time) engine.Outcome {
	out := g.eng.Tick(now)
	g.state = out.State
	return out
}

// ReplacePool applies a fetched pool for a difficulty.
func (g *Game) ReplacePool(d config.Difficulty, words []string) engine.Outcome {
	out := g.eng.Apply(engine.ReplacePool{Difficulty: d, Words: words})
	g.state = out.State
	return out
}

// SetMuted shows the audio state on the HUD.
func (g *Game) SetMuted(m bool) {
	g.muted = m
}

// Flash shows a short status message at the bottom of the screen.
func (g *Game) Flash(msg string) {
	g.status = msg
	g.statusLeft = 2
}

// Close drops the bus subscription.
func (g *Game) Close() {
	g.sub.Close()
}

// placePlayer stands the climber on the current platform and snaps the
// camera to it.
func (g *Game) placePlayer() {
	x, y := g.worldW/2, g.worldH-g.cfg.Platforms.StartOffset-playerSize
	if p, ok := g.state.Current(); ok {
		x, y = p.CenterX(), p.Y-playerSize
	}
	g.player = player{x: x, y: y, startX: x, startY: y, targetX: x, targetY: y, progress: 1}
	g.cameraY = y - g.worldH*g.cfg.Scene.CameraAnchor
	g.scrollY = g.cameraY
}
