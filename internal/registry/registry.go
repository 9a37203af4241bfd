// Package registry provides a global registry for word source factories.
// Sources register themselves in init() functions, allowing the CLI and the
// engine to pick one by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typejump/internal/config"
)

// Supplier produces candidate words for a difficulty tier.
type Supplier interface {
	// FetchWords returns the pool for a difficulty. It may block on I/O and
	// must honor ctx cancellation.
	FetchWords(ctx context.Context, d config.Difficulty) ([]string, error)
}

// SourceInfo contains metadata about a registered word source.
type SourceInfo struct {
	Name        string
	Description string
}

// Factory builds a supplier from the words section of the config.
type Factory func(cfg config.WordsConfig, logger *log.Logger) (Supplier, error)

type entry struct {
	factory     Factory
	description string
}

var (
	sources = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a word source factory to the registry.
// Panics if a source with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[name]; exists {
		panic(fmt.Sprintf("registry: word source %q already registered", name))
	}
	sources[name] = entry{factory: f, description: description}
}

// List returns all registered sources, sorted by name.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(sources))
	for name, e := range sources {
		result = append(result, SourceInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create builds the source named by cfg.Source.
func Create(cfg config.WordsConfig, logger *log.Logger) (Supplier, error) {
	mu.RLock()
	e, ok := sources[cfg.Source]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown word source %q", cfg.Source)
	}
	s, err := e.factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", cfg.Source, err)
	}
	return s, nil
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sources[name]
	return ok
}
