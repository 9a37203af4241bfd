// Package config provides YAML/TOML configuration loading and the difficulty
// enumeration for the game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// TypeJumpConfig contains all tunables for a session.
type TypeJumpConfig struct {
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Words      WordsConfig      `yaml:"words" toml:"words"`
	Scene      SceneConfig      `yaml:"scene" toml:"scene"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
}

// SessionConfig defines the time trial.
type SessionConfig struct {
	DurationSecs int    `yaml:"duration_secs" toml:"duration_secs"`
	StartKey     string `yaml:"start_key" toml:"start_key"` // Key name that starts or restarts a session
}

// ScoringConfig defines points per correct keystroke.
// Each keystroke earns BasePoints * (priorCombo/ComboStep + 1).
type ScoringConfig struct {
	BasePoints int `yaml:"base_points" toml:"base_points"`
	ComboStep  int `yaml:"combo_step" toml:"combo_step"`
}

// PlatformConfig defines the platform ladder geometry in world units.
type PlatformConfig struct {
	InitialCount    int     `yaml:"initial_count" toml:"initial_count"`
	PreviewCount    int     `yaml:"preview_count" toml:"preview_count"`
	ExtendCount     int     `yaml:"extend_count" toml:"extend_count"`
	ExtendThreshold int     `yaml:"extend_threshold" toml:"extend_threshold"`
	MinWidth        float64 `yaml:"min_width" toml:"min_width"`
	CharWidth       float64 `yaml:"char_width" toml:"char_width"`
	Height          float64 `yaml:"height" toml:"height"`
	Spacing         float64 `yaml:"spacing" toml:"spacing"`
	Margin          float64 `yaml:"margin" toml:"margin"`
	StartOffset     float64 `yaml:"start_offset" toml:"start_offset"` // Distance of the first platform above the viewport bottom
	DefaultWord     string  `yaml:"default_word" toml:"default_word"`
}

// DifficultyConfig selects the starting difficulty and per-difficulty
// auto-scroll speeds (world units per frame).
type DifficultyConfig struct {
	Default      string       `yaml:"default" toml:"default"`
	ScrollSpeeds ScrollSpeeds `yaml:"scroll_speeds" toml:"scroll_speeds"`
}

// ScrollSpeeds holds the camera drift for each difficulty.
type ScrollSpeeds struct {
	Beginner     float64 `yaml:"beginner" toml:"beginner"`
	Intermediate float64 `yaml:"intermediate" toml:"intermediate"`
	Expert       float64 `yaml:"expert" toml:"expert"`
}

// WordsConfig selects and configures the word source.
type WordsConfig struct {
	Source     string `yaml:"source" toml:"source"`           // "fallback", "remote" or "file"
	Endpoint   string `yaml:"endpoint" toml:"endpoint"`       // Remote generator URL
	ResultPath string `yaml:"result_path" toml:"result_path"` // gjson path to the word array, empty = top level
	File       string `yaml:"file" toml:"file"`               // Word list, one per line
	TimeoutMs  int    `yaml:"timeout_ms" toml:"timeout_ms"`
	Count      int    `yaml:"count" toml:"count"` // Words requested from the remote generator
	CacheSize  int    `yaml:"cache_size" toml:"cache_size"`
}

// SceneConfig defines the terminal presentation.
type SceneConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column" toml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row" toml:"units_per_row"`
	EscapeMargin   float64 `yaml:"escape_margin" toml:"escape_margin"`
	CameraLerp     float64 `yaml:"camera_lerp" toml:"camera_lerp"`
	CameraAnchor   float64 `yaml:"camera_anchor" toml:"camera_anchor"` // Fraction of the viewport above the player
	JumpSpeed      float64 `yaml:"jump_speed" toml:"jump_speed"`       // Jump progress per second
	MinArc         float64 `yaml:"min_arc" toml:"min_arc"`
}

// AudioConfig toggles sound feedback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // beep volume exponent, 0 = unchanged
}

// Validate reports the first setting that would break the game loop.
func (c TypeJumpConfig) Validate() error {
	var errs []error
	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	if strings.TrimSpace(c.Session.StartKey) == "" {
		errs = append(errs, errors.New("session.start_key must not be empty"))
	}
	if c.Scoring.ComboStep <= 0 {
		errs = append(errs, fmt.Errorf("scoring.combo_step must be positive, got %d", c.Scoring.ComboStep))
	}
	if c.Platforms.InitialCount < 1 || c.Platforms.ExtendCount < 1 {
		errs = append(errs, errors.New("platforms.initial_count and platforms.extend_count must be at least 1"))
	}
	if c.Platforms.ExtendThreshold < 1 {
		errs = append(errs, fmt.Errorf("platforms.extend_threshold must be at least 1, got %d", c.Platforms.ExtendThreshold))
	}
	if c.Platforms.Spacing <= 0 || c.Platforms.CharWidth <= 0 {
		errs = append(errs, errors.New("platforms.spacing and platforms.char_width must be positive"))
	}
	if c.Scene.UnitsPerColumn <= 0 || c.Scene.UnitsPerRow <= 0 {
		errs = append(errs, errors.New("scene.units_per_column and scene.units_per_row must be positive"))
	}
	if _, err := ParseDifficulty(c.Difficulty.Default); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
