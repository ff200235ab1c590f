package item

import "github.com/vovakirdan/tui-rpg/internal/core"

// Placement is an item lying on the ground at a spawn location.
type Placement struct {
	Item *Item
	Pos  core.Vec
}

// Ground is the collection of items not carried by anyone.
type Ground struct {
	placements []Placement
}

// NewGround creates an empty ground collection.
func NewGround() *Ground {
	return &Ground{}
}

// Place drops an item at a location.
func (g *Ground) Place(it *Item, pos core.Vec) {
	if it == nil {
		return
	}
	g.placements = append(g.placements, Placement{Item: it, Pos: pos})
}

// Len returns the number of placements.
func (g *Ground) Len() int {
	return len(g.placements)
}

// Placements returns a snapshot for rendering.
func (g *Ground) Placements() []Placement {
	out := make([]Placement, len(g.placements))
	copy(out, g.placements)
	return out
}

// Nearest returns the index of the closest placement within radius of pos, or -1.
func (g *Ground) Nearest(pos core.Vec, radius float64) int {
	best := -1
	bestDist := radius
	for i, p := range g.placements {
		d := p.Pos.Sub(pos).Len()
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// RemoveCarried drops one placement for every occurrence of a name in
// names. Used when a loaded save already carries an item that would
// otherwise still be lying at its spawn point.
func (g *Ground) RemoveCarried(names []string) int {
	carried := make(map[string]int, len(names))
	for _, n := range names {
		carried[n]++
	}

	kept := g.placements[:0]
	removed := 0
	for _, p := range g.placements {
		if carried[p.Item.Name] > 0 {
			carried[p.Item.Name]--
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(g.placements); i++ {
		g.placements[i] = Placement{}
	}
	g.placements = kept
	return removed
}

// PickUp moves the nearest item within radius of pos into inv.
// The placement is removed only when the inventory accepted the item, so an
// item is never in both collections or in neither.
func PickUp(g *Ground, inv *Inventory, pos core.Vec, radius float64) (*Item, error) {
	idx := g.Nearest(pos, radius)
	if idx < 0 {
		return nil, nil
	}
	it := g.placements[idx].Item
	if err := inv.Add(it); err != nil {
		return nil, err
	}
	g.placements = append(g.placements[:idx], g.placements[idx+1:]...)
	return it, nil
}
