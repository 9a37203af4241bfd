package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.typejump/configs/typejump.{yaml,toml} ->
// ./configs/typejump.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its
// default value.
func Load(customPath string) (TypeJumpConfig, error) {
	base := embeddedDefault()

	if customPath != "" {
		cfg := base
		if err := decodeFile(customPath, &cfg); err != nil {
			return base, err
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg := base
		if err := decodeFile(path, &cfg); err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML over the hardcoded defaults.
func embeddedDefault() TypeJumpConfig {
	cfg := DefaultTypeJumpConfig()
	if err := yaml.Unmarshal(defaultTypeJumpYAML, &cfg); err != nil {
		return DefaultTypeJumpConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// decodeFile reads a YAML or TOML file (by extension) into cfg.
func decodeFile(path string, cfg *TypeJumpConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

// searchPaths returns candidate config files in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "typejump.yaml"),
			filepath.Join(dir, "typejump.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "typejump.yaml"),
		filepath.Join("configs", "typejump.toml"),
	)
}

// userConfigDir returns ~/.typejump/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typejump", "configs")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
