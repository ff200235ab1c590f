package region

import "github.com/vovakirdan/tui-rpg/internal/core"

// Traveler is what a portal moves.
type Traveler interface {
	Position() core.Vec
	Teleport(to core.Vec)
	HasItem(name string) bool
	PortalState() (cooldown float64, last string)
	SetPortalState(cooldown float64, last string)
}

// HandlePortals fires at most one portal for this frame. A portal fires
// when the traveler is inside it, use is pressed, the cooldown has run
// out, it is not the portal that fired last, and its key (if any) is
// carried. The last-portal lock clears only once the traveler stands
// outside every portal. Returns the portal that fired, or nil.
func HandlePortals(t Traveler, regions []Region, use bool, cooldown float64) *Portal {
	cd, last := t.PortalState()

	var fired *Portal
	if use && cd <= 0 {
		pos := t.Position()
		for i := range regions {
			r := regions[i]
			if r.Kind != KindPortal || !r.ContainsVec(pos) {
				continue
			}
			p := r.Portal
			if p.ID == last {
				continue
			}
			if p.Key != "" && !t.HasItem(p.Key) {
				continue
			}
			t.Teleport(p.Target)
			cd, last = cooldown, p.ID
			fired = p
			break
		}
	}

	pos := t.Position()
	inside := false
	for _, r := range regions {
		if r.Kind == KindPortal && r.ContainsVec(pos) {
			inside = true
			break
		}
	}
	if !inside {
		last = ""
	}

	t.SetPortalState(cd, last)
	return fired
}

// MessageAt returns the message of the first sign or NPC containing pos.
func MessageAt(regions []Region, pos core.Vec) (string, bool) {
	for _, r := range regions {
		if (r.Kind == KindSign || r.Kind == KindNPC) && r.ContainsVec(pos) {
			return r.Message(), true
		}
	}
	return "", false
}
