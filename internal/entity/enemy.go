package entity

import (
	"github.com/vovakirdan/tui-rpg/internal/core"
)

const (
	// SeparationRadius is how close siblings must be to push each other apart.
	SeparationRadius = 90.0
	// MinSpeedFactor keeps distant trackers from crawling.
	MinSpeedFactor = 0.2
)

// Steering holds the tracking band. An enemy pursues only while
// MinRange < distance < TrackingRange.
type Steering struct {
	TrackingRange float64
	MinRange      float64
}

// DefaultSteering is the band used when settings do not override it.
var DefaultSteering = Steering{TrackingRange: 400, MinRange: 50}

// BossTraits is the boss payload of an Enemy.
type BossTraits struct {
	Index    int    // sprite row in the boss sheet
	Reward   string // item granted on defeat
	Requires string // boss that must fall before this one appears
}

// Enemy is a hostile actor. Boss is non-nil for the boss variant.
type Enemy struct {
	Actor

	Tracking       bool
	AttackRange    float64
	AttackDamage   float64
	AttackCooldown float64 // seconds between hits
	AttackTimer    float64

	Boss *BossTraits
}

// EnemyStats are the combat numbers an enemy is built from.
type EnemyStats struct {
	HP      float64
	Attack  int
	Defence int
	Speed   float64
}

// AttackTuning configures how an enemy hurts the player.
type AttackTuning struct {
	Range    float64
	Damage   float64
	Cooldown float64
}

// NewEnemy creates a regular enemy.
func NewEnemy(name string, pos core.Vec, st EnemyStats, at AttackTuning, sprite string) *Enemy {
	e := &Enemy{
		Actor:          NewActor(name, pos, st.HP, st.Attack, st.Defence, st.Speed),
		AttackRange:    at.Range,
		AttackDamage:   at.Damage,
		AttackCooldown: at.Cooldown,
	}
	e.Sprite = sprite
	return e
}

// NewBoss creates the boss variant: larger footprint and its own animation.
func NewBoss(name string, pos core.Vec, st EnemyStats, at AttackTuning, sprite string, traits BossTraits) *Enemy {
	e := NewEnemy(name, pos, st, at, sprite)
	e.Size = BossSize
	e.Anim = NewAnimation(BossInterval, BossFrames)
	e.Boss = &traits
	return e
}

// IsBoss reports whether this is the boss variant.
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// InBand reports whether distance d is inside the tracking band.
func (s Steering) InBand(d float64) bool {
	return s.MinRange < d && d < s.TrackingRange
}

// SpeedFactor slows pursuit as the enemy approaches the edge of its range.
func (s Steering) SpeedFactor(d float64) float64 {
	if s.TrackingRange <= 0 {
		return 1
	}
	return core.ClampF((s.TrackingRange-d)/s.TrackingRange, MinSpeedFactor, 1)
}

// Separation sums push-away vectors from siblings within SeparationRadius,
// each weighted 1 - d/SeparationRadius. Coincident siblings are ignored.
func (e *Enemy) Separation(siblings []*Enemy) core.Vec {
	var sep core.Vec
	for _, o := range siblings {
		if o == e || o.Dead() {
			continue
		}
		away := e.Pos.Sub(o.Pos)
		d := away.Len()
		if d <= 0 || d >= SeparationRadius {
			continue
		}
		strength := 1 - d/SeparationRadius
		sep = sep.Add(away.Scale(strength / d))
	}
	return sep
}

// Steer moves the enemy toward target for one frame. Outside the band it
// stands still.
func (e *Enemy) Steer(target core.Vec, dt float64, siblings []*Enemy, s Steering, collides CollideFunc) {
	d := e.DistanceTo(target)
	e.Tracking = s.InBand(d)
	if !e.Tracking {
		e.Moving = false
		e.Anim.Update(dt, false)
		return
	}

	pursuit, ok := target.Sub(e.Pos).Normalize()
	if !ok {
		e.Moving = false
		e.Anim.Update(dt, false)
		return
	}

	dir, ok := pursuit.Add(e.Separation(siblings)).Normalize()
	if !ok {
		e.Moving = false
		e.Anim.Update(dt, false)
		return
	}

	e.Facing = DirectionOf(dir, e.Facing)
	e.Step(dir.Scale(e.Speed*s.SpeedFactor(d)*dt), collides)
	e.Moving = true
	e.Anim.Update(dt, true)
}

// TryAttack counts down the attack timer and strikes the player when in
// range and ready. The damage is mitigated by the player's defence.
// Returns the hp the player lost.
func (e *Enemy) TryAttack(p *Player, dt float64) float64 {
	if e.Dead() || p.Dead() {
		return 0
	}
	e.AttackTimer -= dt
	if e.AttackTimer > 0 || e.DistanceTo(p.Pos) > e.AttackRange {
		return 0
	}
	e.AttackTimer = e.AttackCooldown
	return p.TakeDamage(e.AttackDamage)
}

// CompactDead removes dead enemies in place and returns the survivors
// and the removed ones.
func CompactDead(enemies []*Enemy) (alive, dead []*Enemy) {
	alive = enemies[:0]
	for _, e := range enemies {
		if e.Dead() {
			dead = append(dead, e)
			continue
		}
		alive = append(alive, e)
	}
	for i := len(alive); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return alive, dead
}
