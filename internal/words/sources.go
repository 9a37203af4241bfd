package words

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/registry"
)

const (
	SourceFallback = "fallback"
	SourceRemote   = "remote"
	SourceFile     = "file"
)

func init() {
	registry.Register(SourceFallback, "built-in corpus bucketed by word length",
		func(config.WordsConfig, *log.Logger) (registry.Supplier, error) {
			return NewFallback(time.Now().UnixNano()), nil
		})
	registry.Register(SourceRemote, "HTTP JSON word generator (words.endpoint)",
		func(cfg config.WordsConfig, _ *log.Logger) (registry.Supplier, error) {
			return NewRemote(cfg)
		})
	registry.Register(SourceFile, "word list file, one per line (words.file)",
		func(cfg config.WordsConfig, _ *log.Logger) (registry.Supplier, error) {
			return NewFile(cfg)
		})
}

// New builds the configured source, caches it when it is not the built-in
// corpus and guards it with the fallback. The returned supplier always
// yields a nonempty pool.
func New(cfg config.WordsConfig, logger *log.Logger, seed int64) (registry.Supplier, error) {
	src, err := registry.Create(cfg, logger)
	if err != nil {
		return nil, err
	}
	backup := NewFallback(seed)
	if cfg.Source == SourceFallback {
		return backup, nil
	}

	if cfg.CacheSize > 0 {
		cached, err := NewCached(src, cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		src = cached
	}
	if logger != nil {
		logger.Debug("word source ready", "source", cfg.Source)
	}
	return NewResilient(src, backup, logger), nil
}
