package combat

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

func TestMitigateIsStrictlyPartial(t *testing.T) {
	for _, defence := range []int{0, 1, 10, 40, 100, 1000, 100000} {
		for _, raw := range []float64{0.01, 1, 8, 250, 1e6} {
			got := Mitigate(raw, defence)
			if defence == 0 {
				if got != raw {
					t.Errorf("Mitigate(%v, 0) = %v, expected unchanged", raw, got)
				}
				continue
			}
			if !(got > 0 && got < raw) {
				t.Errorf("Mitigate(%v, %d) = %v, expected in (0, raw)", raw, defence, got)
			}
		}
	}
}

func TestMitigateValues(t *testing.T) {
	if got := Mitigate(100, 100); math.Abs(got-50) > 1e-9 {
		t.Errorf("Mitigate(100, 100) = %v, expected 50", got)
	}
	if got := Mitigate(-5, 10); got != 0 {
		t.Errorf("Mitigate(-5, 10) = %v, expected 0", got)
	}
	if got := Mitigate(10, -30); got != 10 {
		t.Errorf("negative defence should not amplify damage, got %v", got)
	}
}

func TestAttackDamage(t *testing.T) {
	melee := &item.Item{Name: "Sword", Kind: item.KindWeapon, Weapon: &item.Weapon{Power: 20, Range: item.RangeMelee}}
	ranged := &item.Item{Name: "Bow", Kind: item.KindWeapon, Weapon: &item.Weapon{Power: 20, Range: item.RangeRanged}}
	potion := &item.Item{Name: "Potion", Kind: item.KindConsumable, Consumable: &item.Consumable{Strength: 5}}

	tests := []struct {
		name     string
		attack   int
		defence  int
		weapon   *item.Item
		expected float64
	}{
		{"bare hands", 100, 2, nil, 19.8},
		{"non-weapon in hand", 100, 2, potion, 19.8},
		{"melee bonus", 100, 2, melee, 21.8 * 1.2},
		{"ranged penalty", 100, 2, ranged, 21.8 * 0.8},
		{"floor of five", 1, 500, nil, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AttackDamage(tc.attack, tc.defence, tc.weapon)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("AttackDamage() = %v, expected %v", got, tc.expected)
			}
		})
	}

	overpowered := &item.Item{Kind: item.KindWeapon, Weapon: &item.Weapon{Power: 150, Range: item.RangeRanged}}
	if got := AttackDamage(10, 0, overpowered); got != 0 {
		t.Errorf("ranged penalty beyond 100%% should floor at 0, got %v", got)
	}
}

func TestProjectileAdvanceAndBounds(t *testing.T) {
	p := NewProjectile(core.V(100, 100), core.V(0, -3), 100, nil)
	p.Advance(0.5)

	if math.Abs(p.Pos.X-100) > 1e-9 || math.Abs(p.Pos.Y-(100-ProjectileSpeed*0.5)) > 1e-9 {
		t.Errorf("Pos = %+v after 0.5s upward", p.Pos)
	}
	if !p.OutOfBounds(1000, 1000) {
		t.Error("projectile above the map should be out of bounds")
	}

	q := NewProjectile(core.V(10, 10), core.V(1, 0), 100, nil)
	if q.OutOfBounds(1000, 1000) {
		t.Error("projectile inside the map reported out of bounds")
	}
	if r := q.Rect(); r.W != ProjectileSize || r.H != ProjectileSize {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestProjectileSteps(t *testing.T) {
	p := NewProjectile(core.V(0, 0), core.V(1, 0), 100, nil)
	tests := []struct {
		dt       float64
		expected int
	}{
		{0, 1},
		{1.0 / 600, 1},
		{1.0 / 60, 2},
		{0.1, 8},
	}
	for _, tc := range tests {
		n := p.Steps(tc.dt)
		if n != tc.expected {
			t.Errorf("Steps(%v) = %d, expected %d", tc.dt, n, tc.expected)
		}
		if step := p.Speed * tc.dt / float64(n); step > MaxProjectileStep {
			t.Errorf("Steps(%v) leaves a %v px step", tc.dt, step)
		}
	}
}

func TestProjectileDamageUsesTargetDefence(t *testing.T) {
	bow := &item.Item{Name: "Bow", Kind: item.KindWeapon, Weapon: &item.Weapon{Power: 20, Range: item.RangeRanged}}
	p := NewProjectile(core.V(0, 0), core.V(1, 0), 100, bow)

	if got, want := p.DamageAgainst(40), AttackDamage(100, 40, bow); got != want {
		t.Errorf("DamageAgainst(40) = %v, expected %v", got, want)
	}
	if p.DamageAgainst(0) <= p.DamageAgainst(100) {
		t.Error("higher defence should not take more damage")
	}
}
