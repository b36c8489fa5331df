package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, populated from the environment.
type Config struct {
	// SaveDir is the directory holding the autosave, the leaderboard
	// file and the run archive. Empty means ~/.rogue/saves.
	SaveDir string `env:"ROGUE_SAVE_DIR"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `env:"ROGUE_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment and resolves the save
// directory to an absolute default when unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SaveDir == "" {
		dir, err := defaultSaveDir()
		if err != nil {
			return Config{}, err
		}
		cfg.SaveDir = dir
	}
	return cfg, nil
}

func defaultSaveDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".rogue", "saves"), nil
}
