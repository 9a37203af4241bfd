// Package platforms generates the ladder of word platforms the player climbs.
package platforms

import "unicode/utf8"

// Platform is one rung of the ladder: a target word placed in the virtual
// world. Y decreases upward, so each new platform has a smaller Y.
type Platform struct {
	ID             string
	Word           string // Uppercase target word
	X, Y           float64
	Width, Height  float64
	CompletedChars int  // Correctly typed prefix length, 0..len(Word)
	IsCurrent      bool // The word being typed right now
}

// Len returns the word length in characters.
func (p Platform) Len() int {
	return utf8.RuneCountInString(p.Word)
}

// Done reports whether every character has been typed.
func (p Platform) Done() bool {
	return p.CompletedChars >= p.Len()
}

// Next returns the character expected at the current offset.
// ok is false when the word is complete.
func (p Platform) Next() (r rune, ok bool) {
	i := 0
	for _, c := range p.Word {
		if i == p.CompletedChars {
			return c, true
		}
		i++
	}
	return 0, false
}

// Typed returns the completed prefix and the remaining suffix.
func (p Platform) Typed() (done, rest string) {
	runes := []rune(p.Word)
	n := p.CompletedChars
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n]), string(runes[n:])
}

// CenterX returns the horizontal center of the platform.
func (p Platform) CenterX() float64 {
	return p.X + p.Width/2
}

// CurrentIndex returns the index of the current platform, or -1.
func CurrentIndex(list []Platform) int {
	for i, p := range list {
		if p.IsCurrent {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the list that shares no backing array with it.
func Clone(list []Platform) []Platform {
	out := make([]Platform, len(list))
	copy(out, list)
	return out
}
