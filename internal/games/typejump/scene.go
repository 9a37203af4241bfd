package typejump

import (
	"math"
	"time"

	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/events"
	"github.com/vovakirdan/typejump/internal/platforms"
)

// Effect tuning. Velocities are world units per 60 Hz frame.
const (
	refFPS          = 60.0
	missShake       = 12
	shakeDecay      = 0.9
	projectileSpeed = 12  // Progress per second
	particleLife    = 1.0 // Seconds
	particleSpread  = 10
	missTextLife    = 0.6
	missTextRise    = 40 // Units per second
	maxFrameDt      = 0.1
)

// player is the climber, centered on (x, y).
type player struct {
	x, y             float64
	startX, startY   float64
	targetX, targetY float64
	progress         float64 // Jump progress, 1 when standing
}

func (p player) jumping() bool {
	return p.progress < 1
}

type particle struct {
	x, y, vx, vy float64
	life         float64
}

type projectile struct {
	x, y, targetX, targetY float64
	progress               float64
}

type floatingText struct {
	x, y float64
	text string
	life float64
}

// Step advances the animation by dt seconds: it applies pending events,
// moves the camera and effects and reports an escape to the engine when the
// current platform drops out of reach.
func (g *Game) Step(dt float64, now time.Time) {
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	for _, evt := range g.sub.Drain() {
		g.apply(evt)
	}
	g.state = g.eng.State()

	g.stepJump(dt)
	g.stepCamera(dt)

	if g.state.Phase == engine.Playing && g.escaped() {
		out := g.eng.Escape(now)
		g.state = out.State
		for _, evt := range g.sub.Drain() {
			g.apply(evt)
		}
	}

	g.stepEffects(dt)
	if g.statusLeft > 0 {
		g.statusLeft -= dt
	}
}

// apply reacts to one engine event.
func (g *Game) apply(evt events.Event) {
	switch evt.Kind {
	case events.GameStarted:
		g.state = g.eng.State()
		g.particles = nil
		g.projectiles = nil
		g.texts = nil
		g.shake = 0
		g.placePlayer()
	case events.CharacterAccepted:
		tx, ty := charPosition(evt.Platform, g.cfg.Platforms.CharWidth)
		g.projectiles = append(g.projectiles, projectile{
			x: g.player.x, y: g.player.y, targetX: tx, targetY: ty,
		})
		g.burst(tx, ty, 3)
	case events.WordComplete:
		next := evt.Next
		if next.Word == "" {
			return
		}
		g.player.startX, g.player.startY = g.player.x, g.player.y
		g.player.targetX = next.CenterX()
		g.player.targetY = next.Y - playerSize
		g.player.progress = 0
	case events.Miss:
		g.shake = missShake
		g.texts = append(g.texts, floatingText{
			x: g.player.x, y: g.player.y - 50, text: "MISS", life: missTextLife,
		})
	}
}

// charPosition is where the letter just typed sits on its platform.
func charPosition(p platforms.Platform, charWidth float64) (float64, float64) {
	return p.X + float64(p.CompletedChars)*charWidth, p.Y + p.Height/2
}

func (g *Game) burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		g.particles = append(g.particles, particle{
			x: x, y: y,
			vx:   (g.rng.Float64() - 0.5) * particleSpread,
			vy:   (g.rng.Float64() - 0.5) * particleSpread,
			life: particleLife,
		})
	}
}

// stepJump moves the climber along a parabolic arc to its target.
func (g *Game) stepJump(dt float64) {
	p := &g.player
	if !p.jumping() {
		return
	}
	p.progress += dt * g.cfg.Scene.JumpSpeed
	if p.progress >= 1 {
		p.progress = 1
		p.x, p.y = p.targetX, p.targetY
		return
	}
	t := p.progress
	arc := math.Max(g.cfg.Scene.MinArc, math.Abs(p.startX-p.targetX)*0.5) * (1 - math.Pow(math.Abs(2*t-1), 2))
	p.x = p.startX + (p.targetX-p.startX)*core.EaseOut(t)
	p.y = core.Lerp(p.startY, p.targetY, t) - arc
}

// stepCamera eases toward the climber. While playing, an auto-scroll line
// climbs at the difficulty's speed and the camera never sits below it.
func (g *Game) stepCamera(dt float64) {
	frames := dt * refFPS
	target := g.player.y - g.worldH*g.cfg.Scene.CameraAnchor

	if g.state.Phase == engine.Playing {
		speed := g.cfg.Difficulty.ScrollSpeed(g.state.Difficulty)
		g.scrollY = math.Min(g.scrollY-speed*frames, target)
		target = g.scrollY
	}

	k := 1 - math.Pow(1-g.cfg.Scene.CameraLerp, frames)
	g.cameraY += (target - g.cameraY) * k
}

// escaped reports whether the current platform fell below the viewport
// plus the escape margin.
func (g *Game) escaped() bool {
	p, ok := g.state.Current()
	if !ok {
		return false
	}
	return p.Y > g.cameraY+g.worldH+g.cfg.Scene.EscapeMargin
}

func (g *Game) stepEffects(dt float64) {
	frames := dt * refFPS

	alive := g.particles[:0]
	for _, p := range g.particles {
		p.x += p.vx * frames
		p.y += p.vy * frames
		p.life -= dt
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive

	flying := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.progress += dt * projectileSpeed
		if p.progress < 1 {
			flying = append(flying, p)
		}
	}
	g.projectiles = flying

	shown := g.texts[:0]
	for _, t := range g.texts {
		t.y -= dt * missTextRise
		t.life -= dt
		if t.life > 0 {
			shown = append(shown, t)
		}
	}
	g.texts = shown

	if g.shake > 0 {
		g.shake *= math.Pow(shakeDecay, frames)
		if g.shake < 0.5 {
			g.shake = 0
		}
	}
}
