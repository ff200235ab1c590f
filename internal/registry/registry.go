// Package registry provides a global registry of playable scenarios.
// Scenario packages register their map documents in init() functions,
// allowing the platform to discover maps without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownScenario is returned by Load for ids that were never registered.
var ErrUnknownScenario = errors.New("registry: unknown scenario")

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
}

// Loader returns the map document of a scenario.
type Loader func() ([]byte, error)

type entry struct {
	title string
	load  Loader
}

var (
	scenarios = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a scenario to the registry.
// Typically called from a scenario package's init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, load Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scenarios[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}
	if title == "" {
		title = id
	}
	scenarios[id] = entry{title: title, load: load}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(scenarios))
	for id, e := range scenarios {
		result = append(result, ScenarioInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load returns the map document registered under id.
func Load(id string) ([]byte, error) {
	mu.RLock()
	e, ok := scenarios[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScenario, id)
	}
	data, err := e.load()
	if err != nil {
		return nil, fmt.Errorf("registry: load %q: %w", id, err)
	}
	return data, nil
}

// Title returns the display title of a scenario, or the id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := scenarios[id]; ok {
		return e.title
	}
	return id
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}
