package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

const testMap = `
id: test
name: Test Map
tile_width: 32
tile_height: 32
width: 4
height: 3
layers:
  - name: ground_bg
    type: tile
    legend:
      ".": {glyph: ".", color: green}
      "#": {glyph: "#", color: gray}
    rows:
      - "####"
      - "#..#"
      - "####"
  - name: canopy_fg
    type: tile
    legend:
      "^": {glyph: "^", color: bright_green}
    rows:
      - "    "
      - " ^  "
  - name: decals
    type: tile
    legend:
      "x": {glyph: "x"}
    rows: ["xxxx"]
  - name: Collisions
    type: object
    objects:
      - {x: 0, y: 0, w: 128, h: 32}
      - {x: 0, y: 64, w: 128, h: 32}
      - {x: 0, y: 0, w: 0, h: 32}
scene:
  ignored: true
`

func TestParseDimensionsAndLayers(t *testing.T) {
	w, err := Parse([]byte(testMap))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if w.WidthPx != 128 || w.HeightPx != 96 {
		t.Errorf("pixel size = %dx%d, expected 128x96", w.WidthPx, w.HeightPx)
	}
	if got := len(w.CollisionRects()); got != 2 {
		t.Errorf("collision rects = %d, expected 2 (zero-width object dropped)", got)
	}
	if len(w.Background()) != 1 || len(w.Foreground()) != 1 {
		t.Errorf("bg=%d fg=%d, expected 1 and 1 (untagged layer not drawn)",
			len(w.Background()), len(w.Foreground()))
	}

	tile, ok := w.Background()[0].At(1, 1)
	if !ok || tile.Glyph != '.' || tile.Color != core.ColorGreen {
		t.Errorf("At(1,1) = %+v, %v", tile, ok)
	}
	if _, ok := w.Foreground()[0].At(0, 0); ok {
		t.Error("blank foreground cell should be empty")
	}
	if _, ok := w.Foreground()[0].At(0, 2); ok {
		t.Error("missing rows should decode as empty")
	}
}

func TestCollides(t *testing.T) {
	w, err := Parse([]byte(testMap))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		rect     core.Rect
		expected bool
	}{
		{"inside open floor", core.NewRect(40, 36, 20, 20), false},
		{"touching top wall edge", core.NewRect(40, 32, 20, 20), false},
		{"overlapping top wall", core.NewRect(40, 30, 20, 20), true},
		{"overlapping bottom wall", core.NewRect(40, 50, 20, 20), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Collides(tc.rect); got != tc.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.rect, got, tc.expected)
			}
		})
	}
}

func TestCollidesWithoutGeometry(t *testing.T) {
	w, err := FromDocument(Document{TileWidth: 32, TileHeight: 32, Width: 2, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if w.Collides(core.NewRect(0, 0, 64, 64)) {
		t.Error("a world with no collision layer must never block")
	}
}

func TestCustomCollisionLayerName(t *testing.T) {
	doc := Document{
		TileWidth: 32, TileHeight: 32, Width: 2, Height: 2,
		CollisionLayer: "walls",
		Layers: []LayerDocument{
			{Name: "Collisions", Type: "object", Objects: []ObjectDocument{{X: 0, Y: 0, W: 64, H: 64}}},
			{Name: "walls", Type: "object", Objects: []ObjectDocument{{X: 0, Y: 0, W: 8, H: 8}}},
		},
	}
	w, err := FromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.CollisionRects()) != 1 || w.CollisionRects()[0].W != 8 {
		t.Errorf("only the configured layer should be physics, got %+v", w.CollisionRects())
	}
}

func TestParseRejectsEmptyMap(t *testing.T) {
	if _, err := Parse([]byte("id: nothing\n")); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("Parse() error = %v, expected ErrEmptyMap", err)
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("Bright_Green") != core.ColorBrightGreen {
		t.Error("ParseColor should be case-insensitive")
	}
	if ParseColor("ultraviolet") != core.ColorDefault {
		t.Error("unknown colors fall back to default")
	}
}

func TestLoadFileAndContains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(testMap), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if w.ID != "test" || w.Name != "Test Map" {
		t.Errorf("id/name = %q/%q, expected test/Test Map", w.ID, w.Name)
	}

	tests := []struct {
		p        core.Vec
		expected bool
	}{
		{core.V(0, 0), true},
		{core.V(127.9, 95.9), true},
		{core.V(128, 10), false},
		{core.V(10, 96), false},
		{core.V(-1, 10), false},
	}
	for _, tc := range tests {
		if got := w.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
