package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetmatch/internal/config"
	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

// newLogger builds the process logger. With toFile set and no --log-file,
// output goes to ~/.planetmatch/planetmatch.log so it stays off the
// alternate screen. The returned func closes any opened file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" && toFile {
		path = config.UserPath("planetmatch.log")
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		path = config.ExpandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "planetmatch",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// loadConfig reads planets.yaml and applies a difficulty preset.
func loadConfig(preset string) (config.PlanetsConfig, error) {
	cfg, err := config.LoadPlanets(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, ok := config.ParsePreset(preset)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
		}
		config.ApplyPlanetsPreset(&cfg, p)
	}
	return cfg, nil
}

// loadCampaign returns the built-in levels merged with custom level files.
// Unreadable files are logged and skipped.
func loadCampaign(cfg config.PlanetsConfig, logger *log.Logger) ([]levels.Level, error) {
	campaign, skipped, err := levels.Campaign(cfg.LevelsDir)
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		logger.Warn("skipping level file", "err", e)
	}
	return campaign, nil
}

// openStore opens the score database. Failures are logged and play
// continues without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
