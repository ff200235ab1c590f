package combat

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

const (
	// ProjectileSpeed is the travel speed of a fired projectile, px/s.
	ProjectileSpeed = 600.0
	// ProjectileSize is the side length of a projectile's hit box.
	ProjectileSize = 8
	// MaxProjectileStep bounds the distance covered between hit tests.
	MaxProjectileStep = float64(ProjectileSize)
)

// Projectile is a transient shot owned by the player that fired it.
type Projectile struct {
	Pos    core.Vec
	Dir    core.Vec // unit vector
	Speed  float64
	Attack int        // shooter's attack at fire time
	Weapon *item.Item // weapon it was fired from
}

// NewProjectile fires from pos along dir. A zero dir yields a projectile
// that never moves; callers always pass a facing vector.
func NewProjectile(pos, dir core.Vec, attack int, weapon *item.Item) Projectile {
	n, _ := dir.Normalize()
	return Projectile{Pos: pos, Dir: n, Speed: ProjectileSpeed, Attack: attack, Weapon: weapon}
}

// DamageAgainst resolves the hit against a target's defence.
func (p Projectile) DamageAgainst(defence int) float64 {
	return AttackDamage(p.Attack, defence, p.Weapon)
}

// Advance moves the projectile for dt seconds.
func (p *Projectile) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
}

// Steps returns how many sub-steps keep each move within
// MaxProjectileStep for a frame of dt seconds. Always at least 1.
func (p Projectile) Steps(dt float64) int {
	dist := p.Speed * dt
	if dist <= MaxProjectileStep {
		return 1
	}
	return int(math.Ceil(dist / MaxProjectileStep))
}

// Rect returns the hit box centred on the projectile.
func (p Projectile) Rect() core.Rect {
	return core.RectAround(p.Pos.X, p.Pos.Y, ProjectileSize, ProjectileSize)
}

// OutOfBounds reports whether the projectile left the world [0,w)×[0,h).
func (p Projectile) OutOfBounds(w, h int) bool {
	return p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X >= float64(w) || p.Pos.Y >= float64(h)
}
