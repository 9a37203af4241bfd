package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/words"
)

var flagColumns int

var wordsCmd = &cobra.Command{
	Use:   "words <difficulty>",
	Short: "Print the word pool for a difficulty",
	Long: `Fetches the pool the game would use for a difficulty from the configured
word source and prints it. Failures of the source are logged to stderr and
the built-in corpus is printed instead, exactly as in a game.

Examples:
  typejump words beginner
  typejump words expert --columns 1
  typejump words intermediate --endpoint http://localhost:8080/words`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	addSourceFlags(wordsCmd)
	wordsCmd.Flags().IntVar(&flagColumns, "columns", 6, "Words per output line")
}

func runWords(cmd *cobra.Command, args []string) error {
	d, err := config.ParseDifficulty(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagConfig, overrides{
		Words:    flagWords,
		Endpoint: flagEndpoint,
		WordFile: flagWordFile,
	})
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := words.New(cfg.Words, logger, seed())
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Words.TimeoutMs)*time.Millisecond + time.Second
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := src.FetchWords(ctx, d)
	if err != nil {
		return fmt.Errorf("fetch %s words: %w", d, err)
	}

	printPool(os.Stdout, d, cfg.Words.Source, pool, flagColumns)
	return nil
}

// printPool writes pool in aligned columns under a short header.
func printPool(w io.Writer, d config.Difficulty, source string, pool []string, columns int) {
	if columns < 1 {
		columns = 1
	}

	width := 0
	for _, word := range pool {
		if len(word) > width {
			width = len(word)
		}
	}

	fmt.Fprintf(w, "%s pool from %s (%d words):\n\n", d, source, len(pool))
	for i := 0; i < len(pool); i += columns {
		end := min(i+columns, len(pool))
		cells := make([]string, 0, end-i)
		for _, word := range pool[i:end] {
			cells = append(cells, fmt.Sprintf("%-*s", width, word))
		}
		fmt.Fprintln(w, "  "+strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}
