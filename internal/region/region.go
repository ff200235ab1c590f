// Package region implements interaction regions: portals that teleport
// the player, and signs and NPCs that show a message.
package region

import (
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// Kind selects the payload of a Region.
type Kind int

const (
	KindPlain Kind = iota
	KindPortal
	KindSign
	KindNPC
)

func (k Kind) String() string {
	switch k {
	case KindPortal:
		return "portal"
	case KindSign:
		return "sign"
	case KindNPC:
		return "npc"
	default:
		return "region"
	}
}

// Region is an axis-aligned trigger area with inclusive bounds.
// Exactly one payload is set, matching Kind; plain regions have none.
type Region struct {
	Kind   Kind
	X1, X2 float64
	Y1, Y2 float64

	Portal *Portal
	Sign   *Sign
	NPC    *NPC
}

// Portal teleports the player to Target. Key, when set, must be carried.
type Portal struct {
	ID     string
	Target core.Vec
	Key    string
}

// Sign shows a message.
type Sign struct {
	Message string
}

// NPC shows a message and is drawn at the region centre.
type NPC struct {
	Name    string
	Sprite  string
	Message string
}

// NewArea creates a plain region, normalising swapped bounds.
func NewArea(x1, x2, y1, y2 float64) Region {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Region{Kind: KindPlain, X1: x1, X2: x2, Y1: y1, Y2: y2}
}

// NewPortal creates a portal region.
func NewPortal(id string, x1, x2, y1, y2 float64, target core.Vec, key string) Region {
	r := NewArea(x1, x2, y1, y2)
	r.Kind = KindPortal
	r.Portal = &Portal{ID: id, Target: target, Key: key}
	return r
}

// NewSign creates a sign region.
func NewSign(x1, x2, y1, y2 float64, message string) Region {
	r := NewArea(x1, x2, y1, y2)
	r.Kind = KindSign
	r.Sign = &Sign{Message: message}
	return r
}

// NewNPC creates an NPC region.
func NewNPC(name, sprite string, x1, x2, y1, y2 float64, message string) Region {
	r := NewArea(x1, x2, y1, y2)
	r.Kind = KindNPC
	r.NPC = &NPC{Name: name, Sprite: sprite, Message: message}
	return r
}

// Contains reports whether (x, y) lies inside the region, edges included.
func (r Region) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// ContainsVec is Contains for a point.
func (r Region) ContainsVec(p core.Vec) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the middle of the region.
func (r Region) Center() core.Vec {
	return core.V((r.X1+r.X2)/2, (r.Y1+r.Y2)/2)
}

// Message returns the text a sign or NPC shows, or "".
func (r Region) Message() string {
	switch r.Kind {
	case KindSign:
		return r.Sign.Message
	case KindNPC:
		return r.NPC.Message
	default:
		return ""
	}
}
