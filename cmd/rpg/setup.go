package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/registry"
	"github.com/vovakirdan/tui-rpg/internal/world"
)

// newLogger creates a logger at the --log-level on w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.rpg/rpg.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".rpg")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "rpg.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadSettings applies --config and --difficulty.
func loadSettings(logger *log.Logger) config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}
	config.ApplyPreset(&settings, config.DifficultyPreset(flagDifficulty))
	return settings
}

// newGameContext loads settings, items and sprites once per process.
func newGameContext(logger *log.Logger) (*game.Context, error) {
	paths := game.ContentPaths{Items: flagItems, Sprites: flagSprites}
	ctx, err := game.LoadContext(loadSettings(logger), logger, paths)
	if err != nil {
		return nil, fmt.Errorf("cannot load game data: %w", err)
	}
	return ctx, nil
}

// registerMapFile validates a map document on disk and registers it as a
// scenario. The id comes from the document, or the file name; an id that
// clashes with a built-in scenario gets a "file:" prefix.
func registerMapFile(path string) (string, error) {
	w, err := world.LoadFile(path)
	if err != nil {
		return "", err
	}
	id := w.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if registry.Exists(id) {
		id = "file:" + id
	}
	registry.Register(id, w.Name, func() ([]byte, error) {
		return os.ReadFile(path)
	})
	return id, nil
}

// tickRate resolves --fps against the settings.
func tickRate(settings config.Settings) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if settings.Video.FPS > 0 {
		return settings.Video.FPS
	}
	return 60
}
