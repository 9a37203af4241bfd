// Package core provides the terminal-side primitives shared by the game and
// the Bubble Tea platform: a colored screen buffer, geometry helpers, key
// actions and the runtime configuration. It has no Bubble Tea dependency so
// the game can be rendered and tested headless.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps world units onto screen cells.
// World Y grows downward, like the screen, but the world is unbounded upward
// (negative Y) while the camera scrolls.
type Viewport struct {
	CameraY        float64 // World Y shown on the top screen row
	UnitsPerColumn float64
	UnitsPerRow    float64
}

// ToScreen converts a world position to a screen cell.
func (v Viewport) ToScreen(wx, wy float64) (int, int) {
	col := int(math.Floor(wx / v.UnitsPerColumn))
	row := int(math.Floor((wy - v.CameraY) / v.UnitsPerRow))
	return col, row
}

// Span converts a world width to a number of columns, at least 1.
func (v Viewport) Span(w float64) int {
	return Max(1, int(math.Round(w/v.UnitsPerColumn)))
}

// Rows converts a world height to a number of rows, at least 1.
func (v Viewport) Rows(h float64) int {
	return Max(1, int(math.Round(h/v.UnitsPerRow)))
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOut is the quadratic ease-out curve used for horizontal jump motion.
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
