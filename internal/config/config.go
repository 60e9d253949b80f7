// Package config loads the optional user configuration file. Everything
// here has a working default: a missing file is not an error, and a
// present file only needs the keys the user wants to change.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/arjun/codequest/internal/sequencer"
)

// DefaultSlotName is the save slot used when neither the config file nor
// the command line names one.
const DefaultSlotName = "default"

// Config is the user-facing configuration, read from config.toml.
type Config struct {
	// DefaultSlot is the save slot opened when none is given.
	DefaultSlot string `toml:"default_slot"`

	Progression ProgressionConfig `toml:"progression"`
	Banding     BandingConfig     `toml:"banding"`
	LLM         LLMConfig         `toml:"llm"`
}

// ProgressionConfig sets the initial toggles for newly created runs.
// Existing runs keep their stored toggles.
type ProgressionConfig struct {
	Aggressive  bool `toml:"aggressive"`
	Remediation bool `toml:"remediation"`
}

// BandingConfig selects how question difficulty is derived.
type BandingConfig struct {
	// Policy is "thirds" (position-based, the default) or "fixed".
	Policy string `toml:"policy"`

	// Level is the difficulty used when Policy is "fixed".
	Level string `toml:"level"`
}

// LLMConfig overrides LLM settings from the config file. Env vars take
// precedence over these, and these take precedence over built-in defaults.
type LLMConfig struct {
	Provider          string `toml:"provider"`
	Model             string `toml:"model"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
	Burst             int    `toml:"burst"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DefaultSlot: DefaultSlotName,
		Banding:     BandingConfig{Policy: "thirds"},
	}
}

// DefaultPath resolves the config file location: CODEQUEST_CONFIG if set,
// then $XDG_CONFIG_HOME/codequest/config.toml, then ~/.config/codequest/.
func DefaultPath() (string, error) {
	if p := os.Getenv("CODEQUEST_CONFIG"); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codequest", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "codequest", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func applyDefaults(cfg *Config) {
	if cfg.DefaultSlot == "" {
		cfg.DefaultSlot = DefaultSlotName
	}
	if cfg.Banding.Policy == "" {
		cfg.Banding.Policy = "thirds"
	}
	if cfg.Banding.Policy == "fixed" && cfg.Banding.Level == "" {
		cfg.Banding.Level = string(sequencer.DifficultyBeginner)
	}
}

// Validate rejects values that would misconfigure downstream components.
func (c Config) Validate() error {
	switch c.Banding.Policy {
	case "thirds":
	case "fixed":
		switch sequencer.Difficulty(c.Banding.Level) {
		case sequencer.DifficultyBeginner, sequencer.DifficultyIntermediate, sequencer.DifficultyAdvanced:
		default:
			return fmt.Errorf("unknown banding level: %q", c.Banding.Level)
		}
	default:
		return fmt.Errorf("unknown banding policy: %q", c.Banding.Policy)
	}

	if c.LLM.RequestsPerMinute < 0 {
		return fmt.Errorf("llm.requests_per_minute must not be negative")
	}
	return nil
}

// BandingPolicy returns the difficulty policy the config selects.
func (c Config) BandingPolicy() sequencer.BandingPolicy {
	if c.Banding.Policy == "fixed" {
		return sequencer.FixedPolicy{Level: sequencer.Difficulty(c.Banding.Level)}
	}
	return sequencer.ThirdsPolicy{}
}
