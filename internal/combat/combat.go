// Package combat holds the damage formulas and projectile simulation.
// Everything here is a pure function of its inputs.
package combat

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/item"
)

const (
	// MitigationScale is the defence value that halves incoming damage.
	MitigationScale = 100.0
	// MinHitDamage is the floor of the attacker-side formula before weapon scaling.
	MinHitDamage = 5.0
)

// Mitigate applies defender-side reduction to raw damage:
// final = raw * (1 - defence/(defence+100)).
// The reduction approaches but never reaches 100%, so any positive raw
// damage yields a positive result below raw.
func Mitigate(raw float64, defence int) float64 {
	if raw <= 0 {
		return 0
	}
	d := math.Max(0, float64(defence))
	reduction := d / (d + MitigationScale)
	return raw * (1 - reduction)
}

// AttackDamage is the attacker-side formula used when the player hits an enemy:
// max(5, (2*attack + power - defence)/10), then scaled up by power/100 for a
// melee weapon or down by power/100 for a ranged one. Never negative.
func AttackDamage(attack, defence int, weapon *item.Item) float64 {
	power := weapon.WeaponPower()
	amount := math.Max(MinHitDamage, float64(2*attack+power-defence)/10)

	if weapon.IsWeapon() {
		scale := float64(power) / 100
		if weapon.IsRanged() {
			amount *= 1 - scale
		} else {
			amount *= 1 + scale
		}
	}
	return math.Max(0, amount)
}
