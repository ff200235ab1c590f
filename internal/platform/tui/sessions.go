package tui

import "sync"

// SessionRegistry tracks live sessions and the save slot each one holds.
// A slot belongs to at most one session at a time.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string // session id -> slot ("" when none)
	owners   map[string]string // slot -> session id
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]string),
		owners:   make(map[string]string),
	}
}

// Register adds a session and tries to claim slot for it. It reports
// whether the slot was free; the session is registered either way.
func (r *SessionRegistry) Register(id, slot string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.owners[slot]; taken && owner != id {
		r.sessions[id] = ""
		return false
	}
	r.owners[slot] = id
	r.sessions[id] = slot
	return true
}

// Unregister removes a session and frees its slot.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot, ok := r.sessions[id]; ok && slot != "" && r.owners[slot] == id {
		delete(r.owners, slot)
	}
	delete(r.sessions, id)
}

// Owner returns the session holding slot.
func (r *SessionRegistry) Owner(slot string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.owners[slot]
	return id, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
