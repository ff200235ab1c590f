package item

import "errors"

// DefaultCapacity is the number of inventory slots a player carries.
const DefaultCapacity = 20

// ErrInventoryFull is returned when adding to a full inventory.
var ErrInventoryFull = errors.New("item: inventory full")

// Inventory is an ordered, capacity-bounded list of items.
// Slot 0 is the hand: the item currently wielded.
type Inventory struct {
	items    []*Item
	capacity int
}

// NewInventory creates an empty inventory with the given capacity.
// A non-positive capacity selects DefaultCapacity.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{capacity: capacity}
}

// Capacity returns the slot count.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Full reports whether no slot is free.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.capacity
}

// Add appends an item to the first free slot.
func (inv *Inventory) Add(it *Item) error {
	if it == nil {
		return nil
	}
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// At returns the item in slot i, or nil.
func (inv *Inventory) At(i int) *Item {
	if i < 0 || i >= len(inv.items) {
		return nil
	}
	return inv.items[i]
}

// Hand returns the wielded item (slot 0), or nil when empty.
func (inv *Inventory) Hand() *Item {
	return inv.At(0)
}

// RemoveAt removes and returns the item in slot i, shifting later slots up.
func (inv *Inventory) RemoveAt(i int) *Item {
	if i < 0 || i >= len(inv.items) {
		return nil
	}
	it := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return it
}

// Swap exchanges two slots. Out-of-range indices are ignored.
func (inv *Inventory) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(inv.items) || j >= len(inv.items) {
		return
	}
	inv.items[i], inv.items[j] = inv.items[j], inv.items[i]
}

// IndexOf returns the first slot holding an item with the given name, or -1.
func (inv *Inventory) IndexOf(name string) int {
	for i, it := range inv.items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// Contains reports whether an item with the given name is carried.
func (inv *Inventory) Contains(name string) bool {
	return inv.IndexOf(name) >= 0
}

// FirstOf returns the first slot holding an item of the given kind, or -1.
func (inv *Inventory) FirstOf(kind Kind) int {
	for i, it := range inv.items {
		if it.Kind == kind {
			return i
		}
	}
	return -1
}

// Items returns a snapshot of the slots in order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Names returns the item names in slot order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return names
}
