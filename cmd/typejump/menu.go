package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, repeat",
	Long: `Start Type Jump in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Leave a finished session with Esc to see its report, then return to the
menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q            - Quit

Examples:
  typejump menu
  typejump menu --fps 30
  typejump menu --words file --word-file ./words.txt`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	rt := runtimeConfig()
	selected := cfg.Difficulty.StartingDifficulty()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(tui.MenuOptions{
			Runtime:  rt,
			Config:   cfg,
			Selected: selected,
		})
		if err != nil {
			return err
		}
		rt = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		selected = menuResult.Difficulty
		sessionCfg := cfg
		if err := config.ApplyDifficultyPreset(&sessionCfg, strings.ToLower(selected.String())); err != nil {
			return err
		}

		state, quit, err := playOnce(sessionCfg, rt, player, logger)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		// Report for finished sessions only
		if state.Phase != engine.GameOver {
			continue
		}
		goBack, err := tui.RunResults(state, rt.ScreenW, rt.ScreenH)
		if err != nil {
			logger.Error("results screen failed", "err", err)
		}
		if !goBack {
			return nil
		}
	}
}
