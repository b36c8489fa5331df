package root

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/IgorBio/Rogue-sub001/internal/config"
	"github.com/IgorBio/Rogue-sub001/internal/storage"
)

// newLogger builds the process logger handed to the storage layer.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func openLeaderboard() (*storage.LeaderboardStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return storage.NewLeaderboardStore(cfg.SaveDir, newLogger(cfg))
}

func openSaveManager() (*storage.SaveManager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return storage.NewSaveManager(cfg.SaveDir, newLogger(cfg))
}
