package config

import (
	_ "embed"
)

//go:embed defaults/typejump.yaml
var defaultTypeJumpYAML []byte

// DefaultTypeJumpConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultTypeJumpConfig() TypeJumpConfig {
	return TypeJumpConfig{
		Session: SessionConfig{
			DurationSecs: 300, // 5 minute trial
			StartKey:     "enter",
		},
		Scoring: ScoringConfig{
			BasePoints: 10,
			ComboStep:  5,
		},
		Platforms: PlatformConfig{
			InitialCount:    10,
			PreviewCount:    8,
			ExtendCount:     5,
			ExtendThreshold: 4,
			MinWidth:        180,
			CharWidth:       28,
			Height:          65,
			Spacing:         180,
			Margin:          50,
			StartOffset:     250,
			DefaultWord:     "JUMP",
		},
		Difficulty: DifficultyConfig{
			Default: "beginner",
			ScrollSpeeds: ScrollSpeeds{
				Beginner:     0.4,
				Intermediate: 0.8,
				Expert:       1.3,
			},
		},
		Words: WordsConfig{
			Source:    "fallback",
			TimeoutMs: 5000,
			Count:     100,
			CacheSize: 8,
		},
		Scene: SceneConfig{
			UnitsPerColumn: 14,
			UnitsPerRow:    30,
			EscapeMargin:   100,
			CameraLerp:     0.1,
			CameraAnchor:   0.65,
			JumpSpeed:      2.5,
			MinArc:         150,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTypeJumpYAML
}
