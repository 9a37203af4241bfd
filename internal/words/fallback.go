package words

import (
	"context"
	"math/rand"
	"sync"

	"github.com/vovakirdan/typejump/internal/config"
)

// Fallback serves the built-in corpus. It never fails.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback creates a fallback supplier shuffling with the given seed.
func NewFallback(seed int64) *Fallback {
	return &Fallback{rng: rand.New(rand.NewSource(seed))}
}

// FetchWords returns a shuffled copy of the corpus bucket for d.
func (f *Fallback) FetchWords(_ context.Context, d config.Difficulty) ([]string, error) {
	words := Corpus(d)

	f.mu.Lock()
	f.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	f.mu.Unlock()

	return words, nil
}
