package platforms

import (
	"strings"
	"testing"

	"github.com/vovakirdan/typejump/internal/config"
)

func testGenerator(t *testing.T, words ...string) *Generator {
	t.Helper()
	g := NewGenerator(config.DefaultTypeJumpConfig().Platforms, 800, 42)
	g.SetPool(words)
	return g
}

func TestGenerateInitialBatch(t *testing.T) {
	g := testGenerator(t, "the", "quick", "brown", "fox")
	got := g.Generate(1000, 3, true)

	if len(got) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(got))
	}
	if !got[0].IsCurrent {
		t.Error("first platform of an initial batch should be current")
	}
	for i, p := range got[1:] {
		if p.IsCurrent {
			t.Errorf("platform %d should not be current", i+1)
		}
	}

	first := got[0]
	if first.Word != "THE" {
		t.Errorf("expected uppercase word THE, got %q", first.Word)
	}
	if first.Width != 180 {
		t.Errorf("short word should get minimum width 180, got %v", first.Width)
	}
	if want := 800/2 - first.Width/2; first.X != want {
		t.Errorf("first platform should be centered at %v, got %v", want, first.X)
	}
	if first.Height != 65 {
		t.Errorf("expected height 65, got %v", first.Height)
	}

	for i, p := range got {
		if want := 1000 - float64(i)*180; p.Y != want {
			t.Errorf("platform %d: expected y %v, got %v", i, want, p.Y)
		}
	}
	if g.Cursor() != 3 {
		t.Errorf("cursor should advance by count, got %d", g.Cursor())
	}
}

func TestGenerateFollowUpBatch(t *testing.T) {
	g := testGenerator(t, "alpha", "beta")
	got := g.Generate(500, 4, false)

	for i, p := range got {
		if p.IsCurrent {
			t.Errorf("platform %d of a follow-up batch should not be current", i)
		}
		if p.X < 50 {
			t.Errorf("platform %d: x %v is left of the margin", i, p.X)
		}
		if p.X+p.Width > 800 {
			t.Errorf("platform %d: right edge %v leaves the viewport", i, p.X+p.Width)
		}
	}
}

func TestGenerateWrapsPool(t *testing.T) {
	g := testGenerator(t, "a", "b")
	got := g.Generate(0, 5, false)

	want := []string{"A", "B", "A", "B", "A"}
	for i, p := range got {
		if p.Word != want[i] {
			t.Errorf("platform %d: expected %q, got %q", i, want[i], p.Word)
		}
	}
}

func TestGenerateEmptyPoolUsesDefaultWord(t *testing.T) {
	g := testGenerator(t)
	got := g.Generate(0, 2, true)
	for _, p := range got {
		if p.Word != "JUMP" {
			t.Errorf("expected default word JUMP, got %q", p.Word)
		}
	}
}

func TestGenerateWidthScalesWithWord(t *testing.T) {
	g := testGenerator(t, "encapsulation")
	p := g.Generate(0, 1, false)[0]
	if want := 28.0 * 13; p.Width != want {
		t.Errorf("expected width %v, got %v", want, p.Width)
	}
}

func TestGenerateWidePlatformPinnedToMargin(t *testing.T) {
	g := testGenerator(t, strings.Repeat("x", 40))
	p := g.Generate(0, 1, false)[0]
	if p.X != 50 {
		t.Errorf("platform wider than the viewport should sit at the margin, got %v", p.X)
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	g := testGenerator(t, "one", "two")
	seen := make(map[string]bool)
	for _, p := range g.Generate(0, 20, true) {
		if p.ID == "" {
			t.Fatal("platform has empty id")
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestShuffleResetsCursorAndKeepsWords(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	g := testGenerator(t, words...)
	g.Generate(0, 3, false)

	g.Shuffle()
	if g.Cursor() != 0 {
		t.Errorf("shuffle should reset cursor, got %d", g.Cursor())
	}

	pool := g.Pool()
	if len(pool) != len(words) {
		t.Fatalf("shuffle changed pool size: %d", len(pool))
	}
	counts := make(map[string]int)
	for _, w := range pool {
		counts[w]++
	}
	for _, w := range words {
		if counts[w] != 1 {
			t.Errorf("word %q appears %d times after shuffle", w, counts[w])
		}
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	g1 := testGenerator(t, words...)
	g2 := testGenerator(t, words...)
	g1.Shuffle()
	g2.Shuffle()

	p1, p2 := g1.Pool(), g2.Pool()
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("same seed gave different order at %d: %q vs %q", i, p1[i], p2[i])
		}
	}
}

func TestSetPoolKeepsCursor(t *testing.T) {
	g := testGenerator(t, "a", "b", "c")
	g.Generate(0, 2, false)

	g.SetPool([]string{"x", "y", "z"})
	if g.Cursor() != 2 {
		t.Errorf("expected cursor 2 after pool swap, got %d", g.Cursor())
	}
	if p := g.Generate(0, 1, false)[0]; p.Word != "Z" {
		t.Errorf("expected next word Z from new pool, got %q", p.Word)
	}
}

func TestPlatformHelpers(t *testing.T) {
	p := Platform{Word: "JUMP", CompletedChars: 2, X: 10, Width: 180}

	if r, ok := p.Next(); !ok || r != 'M' {
		t.Errorf("expected next rune M, got %q ok=%v", r, ok)
	}
	done, rest := p.Typed()
	if done != "JU" || rest != "MP" {
		t.Errorf("expected JU/MP, got %q/%q", done, rest)
	}
	if p.Done() {
		t.Error("platform should not be done")
	}
	if p.CenterX() != 100 {
		t.Errorf("expected center 100, got %v", p.CenterX())
	}

	p.CompletedChars = 4
	if _, ok := p.Next(); ok {
		t.Error("complete platform should have no next rune")
	}
	if !p.Done() {
		t.Error("platform should be done")
	}
}

func TestCurrentIndexAndClone(t *testing.T) {
	list := []Platform{{Word: "A"}, {Word: "B", IsCurrent: true}}
	if CurrentIndex(list) != 1 {
		t.Errorf("expected current index 1, got %d", CurrentIndex(list))
	}
	if CurrentIndex(nil) != -1 {
		t.Error("empty list should have no current platform")
	}

	c := Clone(list)
	c[1].CompletedChars = 1
	if list[1].CompletedChars != 0 {
		t.Error("clone aliases the original slice")
	}
}
