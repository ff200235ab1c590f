package save

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

func setup(t *testing.T) (config.Settings, *item.Table) {
	t.Helper()
	tbl, err := item.DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() failed: %v", err)
	}
	return config.DefaultSettings(), tbl
}

func TestRoundTrip(t *testing.T) {
	s, tbl := setup(t)

	p := entity.NewPlayer(s)
	p.Level = 3
	p.HP = 42
	p.Gold = 17
	p.XP = 33
	p.XPNext = 140.5
	p.Pos.X, p.Pos.Y = 1234.5, 678.25
	sword, _ := tbl.ByName("Sword")
	potion, _ := tbl.ByName("Health Potion")
	p.Inventory.Add(sword)
	p.Inventory.Add(potion)

	data, err := Marshal(ToSaveDocument(p))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	got, unknown, err := FromSaveDocument(doc, s, tbl)
	if err != nil {
		t.Fatalf("FromSaveDocument() failed: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown items = %v", unknown)
	}

	if got.Level != 3 || got.HP != 42 || got.Gold != 17 {
		t.Errorf("level/hp/gold = %d/%v/%d, expected 3/42/17", got.Level, got.HP, got.Gold)
	}
	if got.Pos != p.Pos {
		t.Errorf("Pos = %v, expected %v", got.Pos, p.Pos)
	}
	if got.XP != 33 || got.XPNext != 140.5 {
		t.Errorf("xp = %v/%v", got.XP, got.XPNext)
	}
	names := got.Inventory.Names()
	if len(names) != 2 || names[0] != "Sword" || names[1] != "Health Potion" {
		t.Errorf("inventory = %v, expected [Sword Health Potion]", names)
	}
	if got.Hand() != sword {
		t.Error("hand should be the first inventory slot")
	}
}

func TestOptionalXPFields(t *testing.T) {
	s, tbl := setup(t)
	data := `{"name":"Old","x":1,"y":2,"hp":5,"hp_max":100,"attack":100,"defence":40,
		"speed":250,"gold":0,"level":2,"inventory":["Bow","Mystery Box"]}`

	doc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	p, unknown, err := FromSaveDocument(doc, s, tbl)
	if err != nil {
		t.Fatal(err)
	}
	if p.XP != 0 || p.XPNext != s.Progression.InitialXPNext {
		t.Errorf("missing xp fields should default, got %v/%v", p.XP, p.XPNext)
	}
	if len(unknown) != 1 || unknown[0] != "Mystery Box" {
		t.Errorf("unknown = %v", unknown)
	}

	out, _ := Marshal(ToSaveDocument(p))
	if !strings.Contains(string(out), `"xp_next"`) {
		t.Error("written saves should carry xp_next")
	}
}

func TestMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":    `{"name": `,
		"zero hp_max": `{"hp":0,"hp_max":0,"level":1}`,
		"hp over max": `{"hp":200,"hp_max":100,"level":1}`,
		"level zero":  `{"hp":1,"hp_max":100,"level":0}`,
		"wrong type":  `{"hp":"full","hp_max":100,"level":1}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse() error = %v, expected ErrMalformed", err)
			}
		})
	}
}
