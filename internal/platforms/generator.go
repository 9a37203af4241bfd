package platforms

import (
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/typejump/internal/config"
)

// Generator turns the word pool into platforms. It owns the pool, a
// monotonic cursor into it and the RNG used for shuffling and placement.
type Generator struct {
	cfg       config.PlatformConfig
	pool      []string
	cursor    int
	viewportW float64
	rng       *rand.Rand
	newID     func() string
}

// NewGenerator creates a generator for a viewport of the given width in
// world units. The seed makes shuffles and layouts reproducible.
func NewGenerator(cfg config.PlatformConfig, viewportW float64, seed int64) *Generator {
	return &Generator{
		cfg:       cfg,
		viewportW: viewportW,
		rng:       rand.New(rand.NewSource(seed)),
		newID:     uuid.NewString,
	}
}

// SetPool replaces the word pool. The cursor keeps counting, so the next
// platform continues at cursor modulo the new pool size.
func (g *Generator) SetPool(words []string) {
	g.pool = append([]string(nil), words...)
}

// Pool returns a copy of the current pool.
func (g *Generator) Pool() []string {
	return append([]string(nil), g.pool...)
}

// PoolSize returns the number of words in the pool.
func (g *Generator) PoolSize() int {
	return len(g.pool)
}

// Cursor returns how many words have been drawn since the last shuffle.
func (g *Generator) Cursor() int {
	return g.cursor
}

// SetViewport updates the world width used for horizontal placement.
func (g *Generator) SetViewport(width float64) {
	g.viewportW = width
}

// Shuffle permutes the pool uniformly (Fisher-Yates) and rewinds the cursor.
func (g *Generator) Shuffle() {
	g.rng.Shuffle(len(g.pool), func(i, j int) {
		g.pool[i], g.pool[j] = g.pool[j], g.pool[i]
	})
	g.cursor = 0
}

// Generate creates count platforms rising from startY. In an initial batch
// the first platform is centered and current; every other platform starts
// inactive.
func (g *Generator) Generate(startY float64, count int, initial bool) []Platform {
	out := make([]Platform, 0, count)
	for i := 0; i < count; i++ {
		word := strings.ToUpper(g.nextWord())
		width := math.Max(g.cfg.MinWidth, g.cfg.CharWidth*float64(len([]rune(word))))

		var x float64
		if initial && i == 0 {
			x = g.viewportW/2 - width/2
		} else {
			x = g.randomX(width)
		}

		out = append(out, Platform{
			ID:        g.newID(),
			Word:      word,
			X:         x,
			Y:         startY - float64(i)*g.cfg.Spacing,
			Width:     width,
			Height:    g.cfg.Height,
			IsCurrent: initial && i == 0,
		})
	}
	return out
}

// nextWord draws the word at the cursor, wrapping around the pool.
func (g *Generator) nextWord() string {
	defer func() { g.cursor++ }()
	if len(g.pool) == 0 {
		return g.cfg.DefaultWord
	}
	word := g.pool[g.cursor%len(g.pool)]
	if word == "" {
		return g.cfg.DefaultWord
	}
	return word
}

// randomX places a platform inside the viewport minus margins. Platforms
// wider than the free space are pinned to the left margin.
func (g *Generator) randomX(width float64) float64 {
	span := g.viewportW - width - g.cfg.Margin
	return math.Max(g.cfg.Margin, g.rng.Float64()*span)
}
