// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "not set" from explicit zero values, so flags can
// override only what the file actually states.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Spawn SpawnConfig `toml:"spawn"`
	Arena ArenaConfig `toml:"arena"`
}

// GameConfig maps session-level settings.
type GameConfig struct {
	MinWordLength *int    `toml:"min-word-length"`
	Sound         *bool   `toml:"sound"`
	Strategy      *string `toml:"strategy"`
	WordList      *string `toml:"word-list"`
}

// SpawnConfig maps spawner timing and selection settings.
type SpawnConfig struct {
	Interval    *float64 `toml:"interval"`
	BatchPairs  *int     `toml:"batch-pairs"`
	BurstPairs  *int     `toml:"burst-pairs"`
	Candidates  *int     `toml:"candidates"`
	RecencySize *int     `toml:"recency"`
	VowelTarget *float64 `toml:"vowel-target"`
}

// ArenaConfig maps arena geometry settings.
type ArenaConfig struct {
	Width   *float64 `toml:"width"`
	Height  *float64 `toml:"height"`
	MaxLink *float64 `toml:"max-link"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
