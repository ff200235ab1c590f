package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation works with intents, never raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move up / cursor up
	ActionDown             // S, Down arrow - move down / cursor down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionDash             // Shift - dash multiplier while held
	ActionAttack           // Space - melee swing or ranged shot, depending on hand
	ActionUse              // E - portals, signs, pick-up, inventory swap
	ActionHeal             // H - drink the first consumable
	ActionEquip            // F - equip armour held in hand
	ActionInventory        // I - open/close inventory
	ActionPause            // Esc, P - save and return to menu
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDash:
		return "Dash"
	case ActionAttack:
		return "Attack"
	case ActionUse:
		return "Use"
	case ActionHeal:
		return "Heal"
	case ActionEquip:
		return "Equip"
	case ActionInventory:
		return "Inventory"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// An action is present while it is held during the tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Axis returns the raw movement vector implied by the directional actions.
// Opposite directions cancel out.
func (f InputFrame) Axis() Vec {
	var v Vec
	if f.Has(ActionLeft) {
		v.X--
	}
	if f.Has(ActionRight) {
		v.X++
	}
	if f.Has(ActionUp) {
		v.Y--
	}
	if f.Has(ActionDown) {
		v.Y++
	}
	return v
}
