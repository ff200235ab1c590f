package tui

import (
	"sync"
	"testing"
)

func TestSessionRegistryClaimsSlot(t *testing.T) {
	r := NewSessionRegistry()

	if !r.Register("a", "ssh:alice") {
		t.Fatal("first session should claim the slot")
	}
	if r.Register("b", "ssh:alice") {
		t.Error("second session must not claim a held slot")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", r.Count())
	}

	// Releasing the loser keeps the owner.
	r.Unregister("b")
	if owner, _ := r.Owner("ssh:alice"); owner != "a" {
		t.Errorf("Owner() = %q, expected a", owner)
	}

	r.Unregister("a")
	if _, ok := r.Owner("ssh:alice"); ok {
		t.Error("slot should be free after its owner leaves")
	}
	if !r.Register("c", "ssh:alice") {
		t.Error("freed slot should be claimable")
	}
}

func TestSessionRegistryConcurrentClaims(t *testing.T) {
	r := NewSessionRegistry()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Register(string(rune('A'+i)), "ssh:bob") {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("%d sessions claimed the slot, expected 1", winners)
	}
}
