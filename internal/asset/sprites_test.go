package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogueHasCoreRoles(t *testing.T) {
	c, err := DefaultCatalogue()
	if err != nil {
		t.Fatalf("DefaultCatalogue() failed: %v", err)
	}
	if err := c.Require("hero", "skeleton", "bosses", "arrow", "slash"); err != nil {
		t.Errorf("default catalogue incomplete: %v", err)
	}
	if c.Sheet("bosses").Rows() != 4 {
		t.Errorf("bosses rows = %d, expected 4", c.Sheet("bosses").Rows())
	}
}

func TestRequireReportsMissingSheet(t *testing.T) {
	c, err := ParseCatalogue([]byte("sheets:\n  hero:\n    directions:\n      down: [\"@\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = c.Require("hero", "dragon")
	if !errors.Is(err, ErrMissingSprites) {
		t.Fatalf("Require() error = %v, expected ErrMissingSprites", err)
	}
}

func TestEmptySheetIsSkipped(t *testing.T) {
	c, err := ParseCatalogue([]byte("sheets:\n  ghost: {color: white}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Sheet("ghost") != nil {
		t.Error("a sheet without frames should not load")
	}
}

func TestFrameFallbacks(t *testing.T) {
	c, err := DefaultCatalogue()
	if err != nil {
		t.Fatal(err)
	}
	hermit := c.Sheet("hermit")
	if got := hermit.Frame("left", 2); got != "&" {
		t.Errorf("Frame(left) = %q, expected fallback to down frame", got)
	}

	hero := c.Sheet("hero")
	if got := hero.Frame("right", 4); got != "@>" {
		t.Errorf("Frame index should wrap, got %q", got)
	}
	if got := hero.RowFrame(3, 0); got != hero.Frame("down", 0) {
		t.Errorf("RowFrame on a sheet without rows = %q", got)
	}

	bosses := c.Sheet("bosses")
	if got := bosses.RowFrame(3, 1); got != "%B%" {
		t.Errorf("RowFrame(3,1) = %q, expected %%B%%", got)
	}
}

func TestLoadCatalogue(t *testing.T) {
	c, err := LoadCatalogue("")
	if err != nil {
		t.Fatalf("LoadCatalogue(\"\") failed: %v", err)
	}
	if c.Sheet("hero") == nil {
		t.Error("empty path should load the embedded catalogue")
	}

	path := filepath.Join(t.TempDir(), "sprites.yaml")
	doc := "sheets:\n  hero:\n    directions:\n      down: [\"H\"]\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = LoadCatalogue(path)
	if err != nil {
		t.Fatalf("LoadCatalogue() failed: %v", err)
	}
	if got := c.Sheet("hero").Frame("down", 0); got != "H" {
		t.Errorf("Frame(down) = %q, expected H", got)
	}

	if _, err := LoadCatalogue(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
