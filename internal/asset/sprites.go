// Package asset holds the sprite catalogue: named glyph sheets keyed by
// facing direction, or by row index for boss sheets.
package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/world"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// ErrMissingSprites is returned when a required sheet is not in the catalogue.
var ErrMissingSprites = errors.New("asset: missing sprite sheet")

type catalogueDoc struct {
	Sheets map[string]sheetDoc `yaml:"sheets"`
}

type sheetDoc struct {
	Color      string              `yaml:"color"`
	Directions map[string][]string `yaml:"directions"`
	Rows       [][]string          `yaml:"rows"`
}

// Sheet is a set of animation frames for one sprite role.
type Sheet struct {
	Name       string
	Color      core.Color
	directions map[string][]string
	rows       [][]string
}

// Frame returns the frame for a facing direction. Directions missing
// from the sheet fall back to "down", then to any direction present.
func (s *Sheet) Frame(dir string, i int) string {
	frames := s.directions[dir]
	if len(frames) == 0 {
		frames = s.directions["down"]
	}
	if len(frames) == 0 {
		for _, k := range s.sortedDirections() {
			frames = s.directions[k]
			break
		}
	}
	return pick(frames, i)
}

// RowFrame returns frame i of an indexed row. Sheets without rows
// fall back to the "down" frames.
func (s *Sheet) RowFrame(row, i int) string {
	if len(s.rows) == 0 {
		return s.Frame("down", i)
	}
	if row < 0 {
		row = 0
	}
	return pick(s.rows[row%len(s.rows)], i)
}

// Rows returns the number of indexed rows.
func (s *Sheet) Rows() int {
	return len(s.rows)
}

func (s *Sheet) sortedDirections() []string {
	keys := make([]string, 0, len(s.directions))
	for k := range s.directions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pick(frames []string, i int) string {
	if len(frames) == 0 {
		return "?"
	}
	if i < 0 {
		i = 0
	}
	return frames[i%len(frames)]
}

// Catalogue is the set of loaded sheets.
type Catalogue struct {
	sheets map[string]*Sheet
}

// DefaultCatalogue returns the embedded catalogue.
func DefaultCatalogue() (*Catalogue, error) {
	return ParseCatalogue(defaultSpritesYAML)
}

// LoadCatalogue reads a catalogue from disk, or the embedded catalogue
// when path is empty.
func LoadCatalogue(path string) (*Catalogue, error) {
	if path == "" {
		return DefaultCatalogue()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", path, err)
	}
	return ParseCatalogue(data)
}

// ParseCatalogue decodes a catalogue document. Sheets with no frames are skipped.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var doc catalogueDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("asset: parse sprites: %w", err)
	}

	c := &Catalogue{sheets: make(map[string]*Sheet, len(doc.Sheets))}
	for name, sd := range doc.Sheets {
		if len(sd.Directions) == 0 && len(sd.Rows) == 0 {
			continue
		}
		c.sheets[name] = &Sheet{
			Name:       name,
			Color:      world.ParseColor(sd.Color),
			directions: sd.Directions,
			rows:       sd.Rows,
		}
	}
	return c, nil
}

// Sheet returns the named sheet, or nil.
func (c *Catalogue) Sheet(name string) *Sheet {
	if c == nil {
		return nil
	}
	return c.sheets[name]
}

// Require checks that every named sheet is present.
func (c *Catalogue) Require(names ...string) error {
	for _, name := range names {
		if c.Sheet(name) == nil {
			return fmt.Errorf("%w: %q", ErrMissingSprites, name)
		}
	}
	return nil
}

// Names lists the loaded sheets, sorted.
func (c *Catalogue) Names() []string {
	out := make([]string, 0, len(c.sheets))
	for name := range c.sheets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
