// Package scenarios registers the built-in maps with the registry.
// Import it for side effects.
package scenarios

import (
	"embed"

	"github.com/vovakirdan/tui-rpg/internal/registry"
)

//go:embed maps/*.yaml
var maps embed.FS

// Default is the scenario played when none is named.
const Default = "vale"

func init() {
	register("vale", "The Vale")
	register("arena", "Practice Arena")
}

func register(id, title string) {
	registry.Register(id, title, func() ([]byte, error) {
		return maps.ReadFile("maps/" + id + ".yaml")
	})
}
