package typejump

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/platforms"
)

// Visual characters for rendering
const (
	snowChar       = '·'
	platformEdge   = '▀'
	particleChar   = '*'
	projectileChar = '•'
)

var playerSprite = [2]string{"▗█▖", "▝▀▘"}

// cullMargin keeps platforms just off screen out of the draw loop.
const cullMargin = 300

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := g.viewport()
	g.drawSnow(dst, vp)
	for _, p := range g.state.Platforms {
		if p.Y < vp.CameraY-cullMargin || p.Y > vp.CameraY+g.worldH+cullMargin {
			continue
		}
		g.drawPlatform(dst, vp, p)
	}
	g.drawPlayer(dst, vp)
	g.drawEffects(dst, vp)

	g.drawHUD(dst)

	switch g.state.Phase {
	case engine.Idle:
		g.drawStartOverlay(dst)
	case engine.GameOver:
		g.drawReport(dst)
	}
}

// viewport returns the camera with the current shake applied.
func (g *Game) viewport() core.Viewport {
	vp := core.Viewport{
		CameraY:        g.cameraY,
		UnitsPerColumn: g.cfg.Scene.UnitsPerColumn,
		UnitsPerRow:    g.cfg.Scene.UnitsPerRow,
	}
	if g.shake > 0 {
		vp.CameraY += (g.rng.Float64() - 0.5) * g.shake
	}
	return vp
}

// drawSnow scatters fixed flakes over a band of the world so the
// background moves with the camera.
func (g *Game) drawSnow(dst *core.Screen, vp core.Viewport) {
	if g.worldW <= 0 {
		return
	}
	band := g.worldH * 5
	for i := 0; i < 50; i++ {
		x := mod(float64(i)*137.5, g.worldW)
		y := mod(float64(i)*250, band)
		// Repeat the band upward so the climb never runs out of snow.
		y += band * float64(int((vp.CameraY-y)/band))
		for _, wy := range []float64{y - band, y, y + band} {
			col, row := vp.ToScreen(x, wy)
			dst.SetColor(col, row, snowChar, core.ColorSlate)
		}
	}
}

func mod(a, b float64) float64 {
	m := a - b*float64(int(a/b))
	if m < 0 {
		m += b
	}
	return m
}

// drawPlatform draws the word row and the ledge beneath it. Typed letters
// are green; the rest is bright on the current platform and dim elsewhere.
func (g *Game) drawPlatform(dst *core.Screen, vp core.Viewport, p platforms.Platform) {
	col, row := vp.ToScreen(p.X, p.Y)
	width := vp.Span(p.Width)

	edge := core.ColorSlate
	rest := core.ColorGray
	if p.IsCurrent {
		edge = core.ColorBrightWhite
		rest = core.ColorBrightWhite
	}

	done, remaining := p.Typed()
	wordLen := len([]rune(p.Word))
	x := col + (width-wordLen)/2
	dst.SetColor(col, row, '[', edge)
	dst.SetColor(col+width-1, row, ']', edge)
	dst.DrawTextColor(x, row, done, core.ColorBrightGreen)
	dst.DrawTextColor(x+len([]rune(done)), row, remaining, rest)

	dst.DrawHLine(col, row+1, width, platformEdge, edge)
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	col, foot := vp.ToScreen(g.player.x, g.player.y+playerHalf)
	col -= len([]rune(playerSprite[0])) / 2
	for i, line := range playerSprite {
		dst.DrawTextColor(col, foot-1+i, line, core.ColorBrightBlue)
	}
}

func (g *Game) drawEffects(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.particles {
		col, row := vp.ToScreen(p.x, p.y)
		dst.SetColor(col, row, particleChar, core.ColorBrightYellow)
	}
	for _, p := range g.projectiles {
		x := core.Lerp(p.x, p.targetX, p.progress)
		y := core.Lerp(p.y, p.targetY, p.progress)
		col, row := vp.ToScreen(x, y)
		dst.SetColor(col, row, projectileChar, core.ColorGreen)
	}
	for _, t := range g.texts {
		col, row := vp.ToScreen(t.x, t.y)
		dst.DrawTextColor(col-len(t.text)/2, row, t.text, core.ColorBrightRed)
	}
}

// FormatClock renders seconds as m:ss.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// drawHUD draws the stat bar on the top row and the hint line at the bottom.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	w, h := dst.Width(), dst.Height()

	dst.DrawHLine(0, 0, w, ' ', core.ColorDefault)
	left := fmt.Sprintf(" SCORE %d  WPM %d ", s.Score, s.WPM)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	if s.Phase == engine.Playing {
		clock := "TIME " + FormatClock(s.TimeLeft)
		c := core.ColorBrightWhite
		if s.TimeLeft < 30 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(0, clock, c)
	}

	right := fmt.Sprintf(" ACC %d%%  %s ", s.Accuracy, strings.ToUpper(s.Difficulty.String()))
	dst.DrawTextColor(w-len(right), 0, right, core.ColorCyan)

	if s.Phase == engine.Playing && s.Combo > 1 {
		combo := fmt.Sprintf(" x%d COMBO ", s.Combo)
		dst.DrawTextColor(1, h-2, combo, core.ColorMagenta)
	}

	hint := "tab difficulty  ctrl+o mute  ctrl+s screenshot  esc quit"
	if g.muted {
		hint = "[muted]  " + hint
	}
	if g.statusLeft > 0 && g.status != "" {
		hint = g.status
	}
	dst.DrawTextCentered(h-1, hint, core.ColorGray)
}

// drawStartOverlay is the idle screen shown over the preview ladder.
func (g *Game) drawStartOverlay(dst *core.Screen) {
	minutes := g.state.Duration / 60
	lines := []overlayLine{
		{"TYPE JUMP", core.ColorBrightWhite},
		{fmt.Sprintf("%d-MINUTE CYBER-WINTER TRIAL", minutes), core.ColorBlue},
		{"", core.ColorDefault},
		{"Press ENTER to start", core.ColorBrightYellow},
		{"Difficulty: " + g.state.Difficulty.String() + "  (tab to change)", core.ColorGray},
	}
	drawPanel(dst, lines)
}

// drawReport is the game-over card with the final stats and the words
// that caused misses.
func (g *Game) drawReport(dst *core.Screen) {
	s := g.state
	title := "TRIAL COMPLETE"
	if s.Reason.String() != "" {
		title += "  (" + s.Reason.String() + ")"
	}
	lines := []overlayLine{
		{title, core.ColorBrightWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("WPM %d   ACCURACY %d%%   SCORE %d", s.WPM, s.Accuracy, s.Score), core.ColorBrightBlue},
		{fmt.Sprintf("MAX COMBO %d   KEYS %d/%d", s.MaxCombo, s.CorrectKeys, s.TotalKeys), core.ColorCyan},
		{"", core.ColorDefault},
		{"WORDS TO PRACTICE", core.ColorRed},
	}
	maxW := core.Max(20, dst.Width()-8)
	if len(s.ProblemWords) == 0 {
		lines = append(lines, overlayLine{"Perfect run - no problem words.", core.ColorGreen})
	} else {
		for _, l := range wrapWords(s.ProblemWords, maxW) {
			lines = append(lines, overlayLine{l, core.ColorBrightRed})
		}
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{"Press ENTER to try again", core.ColorBrightYellow},
	)
	drawPanel(dst, lines)
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed, centered block of lines.
func drawPanel(dst *core.Screen, lines []overlayLine) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l.text)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBlue)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColor(x, boxY+1+i, l.text, l.color)
	}
}

// wrapWords joins words into lines no wider than width.
func wrapWords(words []string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+2+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("  ")
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
