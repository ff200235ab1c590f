package entity

import (
	"github.com/vovakirdan/tui-rpg/internal/combat"
	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

const (
	AttackFrames    = 4
	AttackFrameTime = 0.08 // seconds per attack frame

	// MeleeReach extends the melee hit box this far past the attacker's centre.
	MeleeReach = 32
)

// Player is the controlled actor. The hand is always inventory slot 0.
type Player struct {
	Actor

	Level     int
	XP        float64
	XPNext    float64
	Gold      int
	Inventory *item.Inventory

	Projectiles []combat.Projectile

	Attacking   bool
	AttackFrame int
	AttackTimer float64

	TeleportCooldown float64 // seconds until a portal may fire again
	LastPortal       string  // id of the portal that last fired, "" when none
}

// NewPlayer builds a new-game player from the settings document.
func NewPlayer(s config.Settings) *Player {
	ps := s.Player
	p := &Player{
		Actor:     NewActor(ps.Name, core.V(ps.X, ps.Y), ps.HPMax, ps.Attack, ps.Defence, s.Gameplay.PlayerSpeed),
		Level:     ps.StartingLevel,
		XPNext:    s.Progression.InitialXPNext,
		Gold:      ps.StartingGold,
		Inventory: item.NewInventory(item.DefaultCapacity),
	}
	p.Sprite = ps.Sprite
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

// Hand returns the item in inventory slot 0, or nil.
func (p *Player) Hand() *item.Item {
	return p.Inventory.Hand()
}

// Move applies the directional input for one frame. Holding dash scales
// the speed by dashMult.
func (p *Player) Move(dt float64, in core.InputFrame, dashMult float64, collides CollideFunc) {
	axis := in.Axis()
	dir, ok := axis.Normalize()
	p.Moving = ok
	if ok {
		p.Facing = DirectionOf(axis, p.Facing)
		speed := p.Speed
		if in.Has(core.ActionDash) && dashMult > 0 {
			speed *= dashMult
		}
		p.Step(dir.Scale(speed*dt), collides)
	}
	p.Anim.Update(dt, p.Moving)
}

// AttackResult summarises what one attack input did.
type AttackResult struct {
	Started bool
	Fired   bool // a projectile was spawned
	Hits    int  // enemies struck by a melee swing
}

// Strike starts an attack if none is in progress. A ranged weapon in hand
// fires a projectile along the facing; anything else swings in melee at
// every live enemy inside the reach box.
func (p *Player) Strike(enemies []*Enemy) AttackResult {
	if p.Attacking || p.Dead() {
		return AttackResult{}
	}
	p.Attacking = true
	p.AttackFrame = 0
	p.AttackTimer = 0

	hand := p.Hand()
	if hand.IsRanged() {
		p.Projectiles = append(p.Projectiles, combat.NewProjectile(p.Pos, p.Facing.Vec(), p.Attack, hand))
		return AttackResult{Started: true, Fired: true}
	}

	res := AttackResult{Started: true}
	box := p.MeleeBox()
	for _, e := range enemies {
		if e.Dead() || !box.Intersects(e.Rect()) {
			continue
		}
		e.Hurt(combat.AttackDamage(p.Attack, e.Defence, hand))
		res.Hits++
	}
	return res
}

// MeleeBox is the area a melee swing reaches.
func (p *Player) MeleeBox() core.Rect {
	return core.RectAround(p.Pos.X, p.Pos.Y, 2*MeleeReach, 2*MeleeReach)
}

// UpdateAttack advances the attack animation; the attack gate opens once
// all frames have played.
func (p *Player) UpdateAttack(dt float64) {
	if !p.Attacking {
		return
	}
	p.AttackTimer += dt
	for p.AttackTimer >= AttackFrameTime {
		p.AttackTimer -= AttackFrameTime
		p.AttackFrame++
		if p.AttackFrame >= AttackFrames {
			p.Attacking = false
			p.AttackFrame = 0
			p.AttackTimer = 0
			return
		}
	}
}

// UpdateProjectiles advances every projectile, removing those that left
// the world or struck an enemy. Each projectile hits at most one enemy.
// Long frames are split into sub-steps so a shot cannot pass through an
// enemy between two hit tests. Returns the number of hits.
func (p *Player) UpdateProjectiles(dt float64, enemies []*Enemy, worldW, worldH int) int {
	hits := 0
	kept := p.Projectiles[:0]
	for i := range p.Projectiles {
		pr := p.Projectiles[i]
		if stepProjectile(&pr, dt, enemies, worldW, worldH, &hits) {
			kept = append(kept, pr)
		}
	}
	for i := len(kept); i < len(p.Projectiles); i++ {
		p.Projectiles[i] = combat.Projectile{}
	}
	p.Projectiles = kept
	return hits
}

// stepProjectile moves pr through dt in sub-steps and reports whether it
// is still in flight.
func stepProjectile(pr *combat.Projectile, dt float64, enemies []*Enemy, worldW, worldH int, hits *int) bool {
	n := pr.Steps(dt)
	step := dt / float64(n)
	for range n {
		pr.Advance(step)
		if pr.OutOfBounds(worldW, worldH) {
			return false
		}
		r := pr.Rect()
		for _, e := range enemies {
			if e.Dead() || !r.Intersects(e.Rect()) {
				continue
			}
			e.Hurt(pr.DamageAgainst(e.Defence))
			*hits++
			return false
		}
	}
	return true
}

// UseConsumable drinks the first consumable in the inventory, healing by
// its strength. Returns the consumed item, or nil when there was none.
func (p *Player) UseConsumable() *item.Item {
	idx := p.Inventory.FirstOf(item.KindConsumable)
	if idx < 0 {
		return nil
	}
	it := p.Inventory.RemoveAt(idx)
	if it.Consumable != nil {
		p.Heal(it.Consumable.Strength)
	}
	return it
}

// EquipHand applies armour held in hand: its defence bonus becomes
// permanent and the item is used up. Returns nil if the hand holds no armour.
func (p *Player) EquipHand() *item.Item {
	hand := p.Hand()
	if hand == nil || hand.Kind != item.KindArmour || hand.Armour == nil {
		return nil
	}
	p.Defence += hand.Armour.DefenceBonus
	return p.Inventory.RemoveAt(0)
}

// HasItem reports whether an item with this name is carried.
func (p *Player) HasItem(name string) bool {
	return p.Inventory.Contains(name)
}

// TickCooldowns counts down frame timers.
func (p *Player) TickCooldowns(dt float64) {
	if p.TeleportCooldown > 0 {
		p.TeleportCooldown -= dt
		if p.TeleportCooldown < 0 {
			p.TeleportCooldown = 0
		}
	}
}

// Position returns the player's centre.
func (p *Player) Position() core.Vec {
	return p.Pos
}

// Teleport places the player at a point without collision checks.
func (p *Player) Teleport(to core.Vec) {
	p.Pos = to
}

// PortalState returns the teleport cooldown and the last portal id.
func (p *Player) PortalState() (float64, string) {
	return p.TeleportCooldown, p.LastPortal
}

// SetPortalState stores the teleport cooldown and the last portal id.
func (p *Player) SetPortalState(cooldown float64, last string) {
	p.TeleportCooldown = cooldown
	p.LastPortal = last
}
