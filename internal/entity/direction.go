package entity

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// Direction is the facing of an actor. It selects the sprite row.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name used as a sprite sheet key.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Vec returns the unit vector pointing in the direction.
func (d Direction) Vec() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.V(0, 1)
	}
}

// DirectionOf picks the facing for an intended movement vector.
// Horizontal wins only when |x| > |y|, so pure diagonals face vertically.
// A zero vector keeps the current facing.
func DirectionOf(v core.Vec, current Direction) Direction {
	if v.IsZero() {
		return current
	}
	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return DirRight
		}
		return DirLeft
	}
	if v.Y > 0 {
		return DirDown
	}
	return DirUp
}
