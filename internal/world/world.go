// Package world loads tile-map documents and answers collision queries
// against the static geometry of one named object layer.
package world

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// DefaultCollisionLayer is the object layer whose rectangles block movement.
const DefaultCollisionLayer = "Collisions"

// ErrEmptyMap is returned for documents without a usable grid.
var ErrEmptyMap = errors.New("world: map has no tiles")

// Document mirrors the map file. Keys this package does not know about
// (such as the scene section) are ignored.
type Document struct {
	ID             string          `yaml:"id"`
	Name           string          `yaml:"name"`
	TileWidth      int             `yaml:"tile_width"`
	TileHeight     int             `yaml:"tile_height"`
	Width          int             `yaml:"width"`  // columns
	Height         int             `yaml:"height"` // rows
	CollisionLayer string          `yaml:"collision_layer"`
	Layers         []LayerDocument `yaml:"layers"`
}

// LayerDocument is one tile or object layer.
type LayerDocument struct {
	Name    string               `yaml:"name"`
	Type    string               `yaml:"type"` // "tile" or "object"
	Legend  map[string]TileGlyph `yaml:"legend,omitempty"`
	Rows    []string             `yaml:"rows,omitempty"`
	Objects []ObjectDocument     `yaml:"objects,omitempty"`
}

// TileGlyph describes how a legend character is drawn.
type TileGlyph struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ObjectDocument is a rectangle in world pixels.
type ObjectDocument struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Tile is a drawable cell of a visual layer. A zero Glyph is empty.
type Tile struct {
	Glyph rune
	Color core.Color
}

// TileLayer is a decoded visual layer.
type TileLayer struct {
	Name  string
	tiles [][]Tile
}

// At returns the tile at (col, row); ok is false for empty or out-of-range cells.
func (l TileLayer) At(col, row int) (Tile, bool) {
	if row < 0 || row >= len(l.tiles) || col < 0 || col >= len(l.tiles[row]) {
		return Tile{}, false
	}
	t := l.tiles[row][col]
	return t, t.Glyph != 0
}

// World is the immutable map: grid dimensions, collision geometry and
// the visual layers split into background and foreground.
type World struct {
	ID       string
	Name     string
	TileW    int
	TileH    int
	Cols     int
	Rows     int
	WidthPx  int
	HeightPx int

	collisions []core.Rect
	background []TileLayer
	foreground []TileLayer
}

// LoadFile reads and parses a map document from disk.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a map document.
func Parse(data []byte) (*World, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world: parse map: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument builds a World from an already decoded document.
func FromDocument(doc Document) (*World, error) {
	if doc.TileWidth <= 0 || doc.TileHeight <= 0 || doc.Width <= 0 || doc.Height <= 0 {
		return nil, ErrEmptyMap
	}

	w := &World{
		ID:       doc.ID,
		Name:     doc.Name,
		TileW:    doc.TileWidth,
		TileH:    doc.TileHeight,
		Cols:     doc.Width,
		Rows:     doc.Height,
		WidthPx:  doc.Width * doc.TileWidth,
		HeightPx: doc.Height * doc.TileHeight,
	}

	collisionLayer := doc.CollisionLayer
	if collisionLayer == "" {
		collisionLayer = DefaultCollisionLayer
	}

	for _, layer := range doc.Layers {
		switch {
		case layer.Name == collisionLayer:
			for _, obj := range layer.Objects {
				if obj.W > 0 && obj.H > 0 {
					w.collisions = append(w.collisions, core.NewRect(obj.X, obj.Y, obj.W, obj.H))
				}
			}
		case layer.Type == "tile":
			tl, err := decodeTileLayer(layer, doc.Width, doc.Height)
			if err != nil {
				return nil, err
			}
			name := strings.ToLower(layer.Name)
			if strings.Contains(name, "bg") {
				w.background = append(w.background, tl)
			} else if strings.Contains(name, "fg") {
				w.foreground = append(w.foreground, tl)
			}
			// Layers tagged neither bg nor fg are not drawn.
		}
	}

	return w, nil
}

func decodeTileLayer(layer LayerDocument, cols, rows int) (TileLayer, error) {
	legend := make(map[rune]Tile, len(layer.Legend))
	for key, g := range layer.Legend {
		k := []rune(key)
		if len(k) != 1 {
			return TileLayer{}, fmt.Errorf("world: layer %q: legend key %q must be one character", layer.Name, key)
		}
		glyph := []rune(g.Glyph)
		if len(glyph) == 0 {
			continue
		}
		legend[k[0]] = Tile{Glyph: glyph[0], Color: ParseColor(g.Color)}
	}

	tl := TileLayer{Name: layer.Name, tiles: make([][]Tile, rows)}
	for r := 0; r < rows; r++ {
		tl.tiles[r] = make([]Tile, cols)
		if r >= len(layer.Rows) {
			continue
		}
		c := 0
		for _, ch := range layer.Rows[r] {
			if c >= cols {
				break
			}
			tl.tiles[r][c] = legend[ch]
			c++
		}
	}
	return tl, nil
}

// Collides reports whether rect overlaps any collision rectangle.
// A world without collision geometry never blocks.
func (w *World) Collides(rect core.Rect) bool {
	if len(w.collisions) == 0 {
		return false
	}
	for _, c := range w.collisions {
		if rect.Intersects(c) {
			return true
		}
	}
	return false
}

// CollisionRects returns a copy of the static collision geometry.
func (w *World) CollisionRects() []core.Rect {
	out := make([]core.Rect, len(w.collisions))
	copy(out, w.collisions)
	return out
}

// Background returns the layers drawn beneath actors.
func (w *World) Background() []TileLayer {
	return w.background
}

// Foreground returns the layers drawn above actors.
func (w *World) Foreground() []TileLayer {
	return w.foreground
}

// Contains reports whether a world point lies inside the map bounds.
func (w *World) Contains(p core.Vec) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(w.WidthPx) && p.Y < float64(w.HeightPx)
}

var colorsByName = map[string]core.Color{
	"":              core.ColorDefault,
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright_red":    core.ColorBrightRed,
	"bright_green":  core.ColorBrightGreen,
	"bright_yellow": core.ColorBrightYellow,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
	"brown":         core.ColorBrown,
}

// ParseColor maps a palette name to a Color. Unknown names draw in the default color.
func ParseColor(name string) core.Color {
	if c, ok := colorsByName[strings.ToLower(name)]; ok {
		return c
	}
	return core.ColorDefault
}
