package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/storage"
	"github.com/vovakirdan/wordsnow/internal/words"
)

// loadConfig loads the game configuration and applies a difficulty preset.
func loadConfig(difficulty string) (*config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// openLogger returns a logger writing to --log-file, or one that discards
// everything. The returned closer must be called on exit.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// loadCatalog resolves the words to play: --words file, then a non-empty
// library, then the built-in lists.
func loadCatalog(cfg *config.GameConfig, logger *log.Logger) (*words.Catalog, error) {
	folder := words.NewFolder(cfg.Locale)

	if flagWords != "" {
		return words.Resolve(folder, logger, words.FileSource{Path: flagWords})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open word library, using built-in words", "error", err)
		return words.Resolve(folder, logger, words.EmbeddedSource{})
	}
	defer store.Close()

	return words.Resolve(folder, logger, store, words.EmbeddedSource{})
}
