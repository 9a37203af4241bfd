package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the word pool tier and the auto-scroll speed.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

// Difficulties lists every tier in cycling order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// String returns the display name.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Expert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Next returns the following tier, wrapping Expert back to Beginner.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(Difficulties()))
}

// ParseDifficulty accepts tier names and the arcade-style aliases
// easy, normal and hard. Matching is case-insensitive.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "easy":
		return Beginner, nil
	case "intermediate", "normal":
		return Intermediate, nil
	case "expert", "hard":
		return Expert, nil
	default:
		return Beginner, fmt.Errorf("config: unknown difficulty %q (want beginner, intermediate or expert)", s)
	}
}

// ScrollSpeed returns the camera drift for a tier.
func (c DifficultyConfig) ScrollSpeed(d Difficulty) float64 {
	switch d {
	case Intermediate:
		return c.ScrollSpeeds.Intermediate
	case Expert:
		return c.ScrollSpeeds.Expert
	default:
		return c.ScrollSpeeds.Beginner
	}
}

// StartingDifficulty parses Default, falling back to Beginner.
func (c DifficultyConfig) StartingDifficulty() Difficulty {
	d, err := ParseDifficulty(c.Default)
	if err != nil {
		return Beginner
	}
	return d
}

// ApplyDifficultyPreset sets the starting tier from a CLI preset.
// An empty preset keeps the configured default.
func ApplyDifficultyPreset(cfg *TypeJumpConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty.Default = strings.ToLower(d.String())
	return nil
}
