package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session directly",
	Long: `Start a Type Jump session.

Controls:
  Enter      - Start (and restart after the report)
  A-Z, 0-9   - Type the word on the highlighted platform
  Tab        - Next difficulty (applies to platforms not yet built)
  Ctrl+O     - Toggle sound
  Ctrl+S     - Save a screenshot to ~/.typejump/screenshots
  Esc/Ctrl+C - Quit

Difficulty options:
  beginner     - Short words, slow scroll
  intermediate - Mid-length words, medium scroll
  expert       - Long words, fast scroll

Examples:
  typejump play
  typejump play --difficulty expert
  typejump play --duration 120 --seed 42
  typejump play --word-file ~/words.txt
  typejump play --config ./my-typejump.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, flagOverrides())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	player := openAudio(cfg.Audio, logger)
	defer player.Close()

	_, _, err = playOnce(cfg, runtimeConfig(), player, logger)
	return err
}
