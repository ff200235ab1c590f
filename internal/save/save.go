// Package save converts between the player and the JSON save document.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

// ErrMalformed is returned for save data that cannot describe a player.
var ErrMalformed = errors.New("save: malformed save document")

// Document is the persisted player. XP fields are optional so older
// saves without them still load.
type Document struct {
	Name      string   `json:"name"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	HP        float64  `json:"hp"`
	HPMax     float64  `json:"hp_max"`
	Attack    int      `json:"attack"`
	Defence   int      `json:"defence"`
	Speed     float64  `json:"speed"`
	Gold      int      `json:"gold"`
	Level     int      `json:"level"`
	Inventory []string `json:"inventory"`
	XP        *float64 `json:"xp,omitempty"`
	XPNext    *float64 `json:"xp_next,omitempty"`
}

// Parse decodes and validates a save document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the invariants a player needs.
func (d Document) Validate() error {
	switch {
	case d.HPMax <= 0:
		return fmt.Errorf("%w: hp_max must be positive", ErrMalformed)
	case d.HP < 0 || d.HP > d.HPMax:
		return fmt.Errorf("%w: hp %v outside [0, %v]", ErrMalformed, d.HP, d.HPMax)
	case d.Level < 1:
		return fmt.Errorf("%w: level must be at least 1", ErrMalformed)
	case d.Speed < 0:
		return fmt.Errorf("%w: negative speed", ErrMalformed)
	}
	return nil
}

// Marshal encodes the document as indented JSON.
func Marshal(d Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return data, nil
}

// ToSaveDocument captures the persistent part of a player.
func ToSaveDocument(p *entity.Player) Document {
	xp, xpNext := p.XP, p.XPNext
	return Document{
		Name:      p.Name,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		HP:        p.HP,
		HPMax:     p.HPMax,
		Attack:    p.Attack,
		Defence:   p.Defence,
		Speed:     p.Speed,
		Gold:      p.Gold,
		Level:     p.Level,
		Inventory: p.Inventory.Names(),
		XP:        &xp,
		XPNext:    &xpNext,
	}
}

// FromSaveDocument rebuilds a player. Fields the document does not carry
// (sprite, xp when absent) come from the settings. Inventory names are
// resolved against the item table; unknown names are returned and skipped.
func FromSaveDocument(d Document, s config.Settings, items *item.Table) (*entity.Player, []string, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	p := entity.NewPlayer(s)
	p.Name = d.Name
	p.Pos = core.V(d.X, d.Y)
	p.HPMax = d.HPMax
	p.HP = d.HP
	p.Attack = d.Attack
	p.Defence = d.Defence
	p.Speed = d.Speed
	p.Gold = d.Gold
	p.Level = d.Level
	if d.XP != nil {
		p.XP = *d.XP
	}
	if d.XPNext != nil && *d.XPNext > 0 {
		p.XPNext = *d.XPNext
	}

	var unknown []string
	for _, name := range d.Inventory {
		it, err := items.ByName(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		if err := p.Inventory.Add(it); err != nil {
			return nil, unknown, fmt.Errorf("save: restore inventory: %w", err)
		}
	}
	return p, unknown, nil
}
