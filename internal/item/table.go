package item

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/items.yaml
var defaultItemsYAML []byte

// ErrUnknownItem is returned when a name does not resolve in the table.
var ErrUnknownItem = errors.New("item: unknown item")

// tableDoc mirrors the item table document, grouped by variant.
type tableDoc struct {
	Weapons []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Description string `yaml:"description"`
		Value       int    `yaml:"value"`
		Power       int    `yaml:"power"`
		Range       string `yaml:"range"`
	} `yaml:"weapons"`
	Armour []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Description string `yaml:"description"`
		Value       int    `yaml:"value"`
		Defence     int    `yaml:"defence"`
	} `yaml:"armour"`
	Consumables []struct {
		Name     string  `yaml:"name"`
		Category string  `yaml:"category"`
		Effect   string  `yaml:"effect"`
		Value    int     `yaml:"value"`
		Strength float64 `yaml:"strength"`
	} `yaml:"consumables"`
	QuestItems []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Description string `yaml:"description"`
		Quest       string `yaml:"quest"`
	} `yaml:"quest_items"`
}

// Table is read-only reference data indexed by position and by name.
// Positions follow document order: weapons, armour, consumables, quest items.
type Table struct {
	items  []*Item
	byName map[string]*Item
}

// DefaultTable parses the embedded item table.
func DefaultTable() (*Table, error) {
	return ParseTable(defaultItemsYAML)
}

// LoadTable reads an item table from path, or the embedded table when path is empty.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("item: read table %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable decodes an item table document.
func ParseTable(data []byte) (*Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("item: parse table: %w", err)
	}

	t := &Table{byName: make(map[string]*Item)}

	for _, w := range doc.Weapons {
		rng := Range(w.Range)
		if rng != RangeRanged {
			rng = RangeMelee
		}
		t.add(&Item{
			Name: w.Name, Kind: KindWeapon, SubType: w.Category, Effect: w.Description, Value: w.Value,
			Weapon: &Weapon{Power: w.Power, Range: rng},
		})
	}
	for _, a := range doc.Armour {
		t.add(&Item{
			Name: a.Name, Kind: KindArmour, SubType: a.Category, Effect: a.Description, Value: a.Value,
			Armour: &Armour{DefenceBonus: a.Defence},
		})
	}
	for _, c := range doc.Consumables {
		t.add(&Item{
			Name: c.Name, Kind: KindConsumable, SubType: c.Category, Effect: c.Effect, Value: c.Value,
			Consumable: &Consumable{Strength: c.Strength},
		})
	}
	for _, q := range doc.QuestItems {
		t.add(&Item{
			Name: q.Name, Kind: KindQuest, SubType: q.Category, Effect: q.Description,
			Quest: &Quest{QuestID: q.Quest},
		})
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) add(it *Item) {
	t.items = append(t.items, it)
	if _, dup := t.byName[it.Name]; !dup {
		t.byName[it.Name] = it
	}
}

func (t *Table) validate() error {
	for i, it := range t.items {
		if it.Name == "" {
			return fmt.Errorf("item: entry %d has no name", i)
		}
	}
	if len(t.byName) != len(t.items) {
		return errors.New("item: duplicate item names in table")
	}
	return nil
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	return len(t.items)
}

// At returns the item at position i, or nil when out of range.
func (t *Table) At(i int) *Item {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// ByName resolves an item by its unique name.
func (t *Table) ByName(name string) (*Item, error) {
	it, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownItem, name)
	}
	return it, nil
}
