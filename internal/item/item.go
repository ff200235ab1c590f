// Package item holds the static item table, the item variants, and the two
// collections an item placement can live in: a player's Inventory or the
// Ground.
package item

import "fmt"

// Kind is the closed set of item variants.
type Kind int

const (
	KindWeapon Kind = iota
	KindArmour
	KindConsumable
	KindQuest
)

func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmour:
		return "armour"
	case KindConsumable:
		return "consumable"
	case KindQuest:
		return "quest_item"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Range is the range class of a weapon.
type Range string

const (
	RangeMelee  Range = "melee"
	RangeRanged Range = "ranged"
)

// Item is an immutable record loaded from the item table.
// Exactly one of the variant payloads is set, matching Kind.
type Item struct {
	Name    string
	Kind    Kind
	SubType string // category from the table ("sword", "bow", "potion", ...)
	Effect  string // description or effect text
	Value   int

	Weapon     *Weapon
	Armour     *Armour
	Consumable *Consumable
	Quest      *Quest
}

// Weapon is the payload of KindWeapon.
type Weapon struct {
	Power int
	Range Range
}

// Armour is the payload of KindArmour.
type Armour struct {
	DefenceBonus int
}

// Consumable is the payload of KindConsumable.
type Consumable struct {
	Strength float64
}

// Quest is the payload of KindQuest.
type Quest struct {
	QuestID string
}

// IsWeapon reports whether the item is a weapon.
func (it *Item) IsWeapon() bool {
	return it != nil && it.Kind == KindWeapon && it.Weapon != nil
}

// IsRanged reports whether the item is a ranged weapon.
func (it *Item) IsRanged() bool {
	return it.IsWeapon() && it.Weapon.Range == RangeRanged
}

// WeaponPower returns the weapon power, or 0 for non-weapons and nil.
func (it *Item) WeaponPower() int {
	if !it.IsWeapon() {
		return 0
	}
	return it.Weapon.Power
}

// Glyph returns the rune used to draw the item on the ground.
func (it *Item) Glyph() rune {
	if it == nil {
		return ' '
	}
	switch it.Kind {
	case KindWeapon:
		if it.IsRanged() {
			return '}'
		}
		return '/'
	case KindArmour:
		return '['
	case KindConsumable:
		return '!'
	case KindQuest:
		return '*'
	default:
		return '?'
	}
}

func (it *Item) String() string {
	if it == nil {
		return "<none>"
	}
	return it.Name
}
