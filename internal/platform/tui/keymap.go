package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// HoldWindow is how long an action stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 150 * time.Millisecond

// KeyMap binds terminal keys to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	DashUp    key.Binding
	DashDown  key.Binding
	DashLeft  key.Binding
	DashRight key.Binding
	Attack    key.Binding
	Use       key.Binding
	Heal      key.Binding
	Equip     key.Binding
	Inventory key.Binding
	Pause     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("w/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("s/↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("a/←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("d/→", "right")),
		DashUp:    key.NewBinding(key.WithKeys("shift+up", "W")),
		DashDown:  key.NewBinding(key.WithKeys("shift+down", "S")),
		DashLeft:  key.NewBinding(key.WithKeys("shift+left", "A")),
		DashRight: key.NewBinding(key.WithKeys("shift+right", "D"), key.WithHelp("shift", "dash")),
		Attack:    key.NewBinding(key.WithKeys(" ", "j"), key.WithHelp("space", "attack")),
		Use:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "use")),
		Heal:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "heal")),
		Equip:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "equip")),
		Inventory: key.NewBinding(key.WithKeys("i", "tab"), key.WithHelp("i", "inventory")),
		Pause:     key.NewBinding(key.WithKeys("esc", "p"), key.WithHelp("esc", "save & menu")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DashRight, k.Attack, k.Use, k.Heal, k.Equip, k.Inventory, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.DashRight},
		{k.Attack, k.Use, k.Heal, k.Equip},
		{k.Inventory, k.Pause, k.Quit},
	}
}

// Actions translates a key message into the actions it triggers.
// Shifted directions yield the direction plus ActionDash.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.DashUp):
		return []core.Action{core.ActionUp, core.ActionDash}
	case key.Matches(msg, k.DashDown):
		return []core.Action{core.ActionDown, core.ActionDash}
	case key.Matches(msg, k.DashLeft):
		return []core.Action{core.ActionLeft, core.ActionDash}
	case key.Matches(msg, k.DashRight):
		return []core.Action{core.ActionRight, core.ActionDash}
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionUp}
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionDown}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Attack):
		return []core.Action{core.ActionAttack}
	case key.Matches(msg, k.Use):
		return []core.Action{core.ActionUse}
	case key.Matches(msg, k.Heal):
		return []core.Action{core.ActionHeal}
	case key.Matches(msg, k.Equip):
		return []core.Action{core.ActionEquip}
	case key.Matches(msg, k.Inventory):
		return []core.Action{core.ActionInventory}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	}
	return nil
}

// isHeld reports whether an action is sustained by key repeats. Every
// other action is a one-frame pulse per key event.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionDash, core.ActionAttack:
		return true
	}
	return false
}

// HeldKeys turns key events into per-frame held input.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
	pulses map[core.Action]bool
}

// NewHeldKeys creates a tracker. A non-positive window uses HoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = HoldWindow
	}
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
		pulses: make(map[core.Action]bool),
	}
}

// Press records a key event for an action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if isHeld(a) {
		h.last[a] = now
		return
	}
	h.pulses[a] = true
}

// Frame returns the input held at now and consumes pending pulses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) <= h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	for a := range h.pulses {
		frame.Set(a)
		delete(h.pulses, a)
	}
	return frame
}

// Reset forgets every held key and pending pulse.
func (h *HeldKeys) Reset() {
	clear(h.last)
	clear(h.pulses)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h", "shift+tab":
		return MenuActionLeft
	case "d", "right", "l", "tab":
		return MenuActionRight
	case "enter", " ", "e":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
