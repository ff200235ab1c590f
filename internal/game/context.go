// Package game is the frame orchestrator: it builds a scene from a map
// document, advances the simulation one frame at a time, and produces
// the render state.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/asset"
	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

// Context carries the read-only data every scene needs. It is built once
// at startup and shared by all sessions.
type Context struct {
	Settings config.Settings
	Items    *item.Table
	Sprites  *asset.Catalogue
	Logger   *log.Logger
}

// ContentPaths points at item and sprite documents on disk.
// Empty paths select the embedded defaults.
type ContentPaths struct {
	Items   string
	Sprites string
}

// NewContext loads the embedded item table and sprite catalogue.
// A nil logger discards output.
func NewContext(settings config.Settings, logger *log.Logger) (*Context, error) {
	return LoadContext(settings, logger, ContentPaths{})
}

// LoadContext is NewContext with the item table and sprite catalogue
// read from paths.
func LoadContext(settings config.Settings, logger *log.Logger, paths ContentPaths) (*Context, error) {
	items, err := item.LoadTable(paths.Items)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	sprites, err := asset.LoadCatalogue(paths.Sprites)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{Settings: settings, Items: items, Sprites: sprites, Logger: logger}, nil
}

func (c *Context) logger() *log.Logger {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c.Logger
}
