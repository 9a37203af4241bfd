package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/typejump/internal/config"
)

// File serves words from a list on disk, bucketed by length like the
// built-in corpus. The file is re-read on every fetch so edits show up on
// the next difficulty change.
type File struct {
	path string
}

// NewFile creates a file supplier.
func NewFile(cfg config.WordsConfig) (*File, error) {
	if cfg.File == "" {
		return nil, errors.New("words: file source needs a path")
	}
	return &File{path: cfg.File}, nil
}

// FetchWords loads the file and keeps the words of tier d.
func (f *File) FetchWords(_ context.Context, d config.Difficulty) ([]string, error) {
	all, err := LoadWords(f.path)
	if err != nil {
		return nil, err
	}
	words := Bucket(Normalize(all), d)
	if len(words) == 0 {
		return nil, fmt.Errorf("words: %s has no %s words: %w", f.path, d, ErrEmpty)
	}
	return words, nil
}

// LoadWords reads one word per line, skipping blank lines and # comments.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open list: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	return words, nil
}
