package words

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/registry"
)

// Resilient substitutes a backup supplier whenever the primary fails or
// comes back empty, so callers always get a nonempty pool.
type Resilient struct {
	primary registry.Supplier
	backup  registry.Supplier
	logger  *log.Logger
}

// NewResilient wraps primary. backup should be a supplier that cannot fail,
// normally a *Fallback.
func NewResilient(primary, backup registry.Supplier, logger *log.Logger) *Resilient {
	return &Resilient{primary: primary, backup: backup, logger: logger}
}

// FetchWords never returns an error unless the backup itself fails.
func (r *Resilient) FetchWords(ctx context.Context, d config.Difficulty) ([]string, error) {
	words, err := r.primary.FetchWords(ctx, d)
	if err == nil && len(words) > 0 {
		return words, nil
	}
	if err == nil {
		err = ErrEmpty
	}
	if r.logger != nil {
		r.logger.Warn("word source failed, using built-in corpus", "difficulty", d, "err", err)
	}
	return r.backup.FetchWords(ctx, d)
}
