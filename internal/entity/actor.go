// Package entity implements the actors of the simulation: the player,
// regular enemies and bosses, with their movement, animation, steering,
// attacks and leveling.
package entity

import (
	"github.com/vovakirdan/tui-rpg/internal/combat"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

const (
	// ActorSize is the side of a regular actor's collision box, in px.
	ActorSize = 32
	// BossSize is the side of a boss's collision box.
	BossSize = 64

	// StandingFrame is shown while idle.
	StandingFrame = 1
	WalkFrames    = 3
	WalkInterval  = 0.15 // seconds per frame

	BossFrames   = 4
	BossInterval = 0.2
)

// CollideFunc reports whether a rectangle hits static geometry.
type CollideFunc func(core.Rect) bool

// Animation is a frame index with an elapsed-time accumulator.
type Animation struct {
	Frame    int
	Elapsed  float64
	Interval float64
	Frames   int
}

// NewAnimation starts on the standing frame.
func NewAnimation(interval float64, frames int) Animation {
	return Animation{Frame: StandingFrame % frames, Interval: interval, Frames: frames}
}

// Update advances the cycle while moving. Idle snaps back to the standing frame.
func (a *Animation) Update(dt float64, moving bool) {
	if !moving {
		a.Frame = StandingFrame % a.Frames
		a.Elapsed = 0
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.Interval {
		a.Elapsed = 0
		a.Frame = (a.Frame + 1) % a.Frames
	}
}

// Actor is the shared state of everything that moves and fights.
// Pos is the sprite centre in world pixels.
type Actor struct {
	Name    string
	Pos     core.Vec
	Size    int
	HP      float64
	HPMax   float64
	Attack  int
	Defence int
	Speed   float64 // px/s
	Facing  Direction
	Moving  bool
	Anim    Animation
	Sprite  string // sprite sheet name
}

// NewActor creates an actor at full health facing down.
func NewActor(name string, pos core.Vec, hpMax float64, attack, defence int, speed float64) Actor {
	if hpMax <= 0 {
		hpMax = 1
	}
	return Actor{
		Name:    name,
		Pos:     pos,
		Size:    ActorSize,
		HP:      hpMax,
		HPMax:   hpMax,
		Attack:  attack,
		Defence: defence,
		Speed:   speed,
		Facing:  DirDown,
		Anim:    NewAnimation(WalkInterval, WalkFrames),
	}
}

// Rect returns the collision box centred on Pos.
func (a *Actor) Rect() core.Rect {
	return core.RectAround(a.Pos.X, a.Pos.Y, a.Size, a.Size)
}

// Alive reports whether hp is above zero.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// Dead reports whether hp reached zero.
func (a *Actor) Dead() bool {
	return a.HP <= 0
}

// Step moves by delta one axis at a time. An axis whose move collides is
// reverted, so blocked diagonal movement slides along the obstacle.
// Returns whether either axis moved.
func (a *Actor) Step(delta core.Vec, collides CollideFunc) bool {
	moved := false

	if delta.X != 0 {
		oldX := a.Pos.X
		a.Pos.X += delta.X
		if collides != nil && collides(a.Rect()) {
			a.Pos.X = oldX
		} else {
			moved = true
		}
	}

	if delta.Y != 0 {
		oldY := a.Pos.Y
		a.Pos.Y += delta.Y
		if collides != nil && collides(a.Rect()) {
			a.Pos.Y = oldY
		} else {
			moved = true
		}
	}

	return moved
}

// TakeDamage applies raw damage after defence mitigation and returns the
// amount actually lost. HP never drops below zero.
func (a *Actor) TakeDamage(raw float64) float64 {
	return a.Hurt(combat.Mitigate(raw, a.Defence))
}

// Hurt removes hp without mitigation.
func (a *Actor) Hurt(amount float64) float64 {
	if amount <= 0 || a.HP <= 0 {
		return 0
	}
	before := a.HP
	a.HP = core.ClampF(a.HP-amount, 0, a.HPMax)
	return before - a.HP
}

// Heal restores hp up to HPMax and returns the amount gained.
func (a *Actor) Heal(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := a.HP
	a.HP = core.ClampF(a.HP+amount, 0, a.HPMax)
	return a.HP - before
}

// DistanceTo returns the Euclidean distance from Pos to p.
func (a *Actor) DistanceTo(p core.Vec) float64 {
	return p.Sub(a.Pos).Len()
}

// HPRatio returns hp/hp_max in [0,1].
func (a *Actor) HPRatio() float64 {
	return core.ClampF(a.HP/a.HPMax, 0, 1)
}
