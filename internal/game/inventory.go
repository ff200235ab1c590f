package game

import "github.com/vovakirdan/tui-rpg/internal/core"

// inventoryView is the modal inventory screen. The world is frozen while
// it is open. Use picks up the item under the cursor; a second use swaps
// it with the item under the cursor, which is how the hand is changed.
type inventoryView struct {
	open   bool
	cursor int
	held   int // slot picked up for a swap, -1 when none
}

func (v *inventoryView) toggle() {
	v.open = !v.open
	v.held = -1
}

func (g *Game) updateInventory(in core.InputFrame) {
	v := &g.inventory
	inv := g.player.Inventory
	last := inv.Len() - 1

	switch {
	case g.pressed(in, core.ActionUp):
		v.cursor--
	case g.pressed(in, core.ActionDown):
		v.cursor++
	}
	v.cursor = core.Clamp(v.cursor, 0, max(0, last))

	if !g.pressed(in, core.ActionUse) || inv.Len() == 0 {
		return
	}
	if v.held < 0 {
		v.held = v.cursor
		return
	}
	inv.Swap(v.held, v.cursor)
	v.held = -1
}

// InventoryCursor returns the highlighted slot and the slot held for a
// swap (-1 when none).
func (g *Game) InventoryCursor() (cursor, held int) {
	return g.inventory.cursor, g.inventory.held
}
