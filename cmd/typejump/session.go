package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typejump/internal/audio"
	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/core"
	"github.com/vovakirdan/typejump/internal/engine"
	"github.com/vovakirdan/typejump/internal/events"
	"github.com/vovakirdan/typejump/internal/games/typejump"
	"github.com/vovakirdan/typejump/internal/platform/tui"
	"github.com/vovakirdan/typejump/internal/registry"
	"github.com/vovakirdan/typejump/internal/words"
)

var (
	flagDifficulty string
	flagDuration   int
	flagWords      string
	flagEndpoint   string
	flagWordFile   string
	flagMute       bool
)

// addSourceFlags registers the flags that pick the word source.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagWords, "words", "", "Word source: "+strings.Join(sourceNames(), ", "))
	cmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Remote word generator URL (implies --words remote)")
	cmd.Flags().StringVar(&flagWordFile, "word-file", "", "Word list file (implies --words file)")
}

// addSessionFlags registers the flags shared by commands that play.
func addSessionFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: beginner, intermediate, expert")
	cmd.Flags().IntVar(&flagDuration, "duration", 0, "Session length in seconds (0 = config value)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func sourceNames() []string {
	infos := registry.List()
	names := make([]string, len(infos))
	for i, s := range infos {
		names[i] = s.Name
	}
	return names
}

// overrides holds the command line values that win over the config file.
type overrides struct {
	Difficulty string
	Duration   int
	Words      string
	Endpoint   string
	WordFile   string
	Mute       bool
}

func flagOverrides() overrides {
	return overrides{
		Difficulty: flagDifficulty,
		Duration:   flagDuration,
		Words:      flagWords,
		Endpoint:   flagEndpoint,
		WordFile:   flagWordFile,
		Mute:       flagMute,
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(path string, o overrides) (config.TypeJumpConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if err := config.ApplyDifficultyPreset(&cfg, o.Difficulty); err != nil {
		return cfg, err
	}
	if o.Duration > 0 {
		cfg.Session.DurationSecs = o.Duration
	}
	if o.Endpoint != "" {
		cfg.Words.Endpoint = o.Endpoint
		cfg.Words.Source = words.SourceRemote
	}
	if o.WordFile != "" {
		file, err := config.ExpandHome(o.WordFile)
		if err != nil {
			return cfg, err
		}
		cfg.Words.File = file
		cfg.Words.Source = words.SourceFile
	}
	if o.Words != "" {
		cfg.Words.Source = o.Words
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}

	if !registry.Exists(cfg.Words.Source) {
		return cfg, fmt.Errorf("unknown word source %q (run 'typejump sources')", cfg.Words.Source)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newLogger builds the program logger. Interactive commands own the
// terminal, so without --log-file they log nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "typejump",
		Level:           level,
	})
	return logger, closer, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openAudio starts the speaker. Failure leaves a silent player.
func openAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(cfg, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
	}
	return player
}

// session is one engine with its scene and event plumbing.
type session struct {
	bus    *events.Bus
	game   *typejump.Game
	cancel context.CancelFunc
}

// newSession builds the word source, engine and scene for cfg, hooks the
// audio player to the event bus and loads the first pool.
func newSession(cfg config.TypeJumpConfig, rt core.RuntimeConfig, player *audio.Player, logger *log.Logger) (*session, error) {
	src, err := words.New(cfg.Words, logger, seed())
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	eng := engine.New(cfg, src, bus, logger, seed())
	game := typejump.New(eng, bus)
	game.Resize(rt.ScreenW, rt.ScreenH)

	ctx, cancel := context.WithCancel(context.Background())
	if player != nil {
		game.SetMuted(player.Muted())
		go player.Run(ctx, bus.Subscribe(events.DefaultBuffer))
	}

	if err := eng.Load(ctx); err != nil {
		logger.Warn("initial word pool unavailable", "err", err)
	}
	game.Reset(rt)
	logger.Info("session ready",
		"difficulty", eng.State().Difficulty,
		"source", cfg.Words.Source,
		"pool", eng.PoolSize(),
	)

	return &session{bus: bus, game: game, cancel: cancel}, nil
}

// Close stops the audio feed and releases subscriptions.
func (s *session) Close() {
	s.cancel()
	s.game.Close()
	s.bus.Close()
}

// playOnce runs a single session and reports how it ended and whether the
// player asked to quit the program.
func playOnce(cfg config.TypeJumpConfig, rt core.RuntimeConfig, player *audio.Player, logger *log.Logger) (engine.State, bool, error) {
	s, err := newSession(cfg, rt, player, logger)
	if err != nil {
		return engine.State{}, false, err
	}
	defer s.Close()

	result, err := tui.Run(s.game, tui.Options{
		Runtime:  rt,
		StartKey: cfg.Session.StartKey,
		Audio:    player,
		Logger:   logger,
	})
	if err != nil {
		return result.State, false, fmt.Errorf("error running game: %w", err)
	}

	logger.Info("session closed",
		"phase", result.State.Phase,
		"score", result.State.Score,
		"wpm", result.State.WPM,
		"accuracy", result.State.Accuracy,
	)
	return result.State, result.Quit, nil
}
