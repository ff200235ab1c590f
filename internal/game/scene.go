package game

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/region"
)

// Point is a world position in a scene document.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts to a core vector.
func (p Point) Vec() core.Vec {
	return core.V(p.X, p.Y)
}

// Area is an inclusive rectangle in a scene document.
type Area struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
	Y1 float64 `yaml:"y1"`
	Y2 float64 `yaml:"y2"`
}

// Region converts to a plain region.
func (a Area) Region() region.Region {
	return region.NewArea(a.X1, a.X2, a.Y1, a.Y2)
}

// StatsDoc holds combat stats shared by enemy, boss and support entries.
type StatsDoc struct {
	Sprite  string  `yaml:"sprite"`
	HP      float64 `yaml:"hp"`
	Attack  int     `yaml:"attack"`
	Defence int     `yaml:"defence"`
	Speed   float64 `yaml:"speed"`
}

// EnemySpawns is the spawn table: fixed points plus random ones in an area.
type EnemySpawns struct {
	StatsDoc `yaml:",inline"`
	Fixed    []Point `yaml:"fixed"`
	Random   struct {
		Count int  `yaml:"count"`
		Area  Area `yaml:"area"`
	} `yaml:"random"`
}

// BossDoc describes a boss that appears when the player enters Trigger.
type BossDoc struct {
	StatsDoc     `yaml:",inline"`
	Name         string    `yaml:"name"`
	Index        int       `yaml:"index"`
	At           Point     `yaml:"at"`
	AttackRange  float64   `yaml:"attack_range"`
	AttackDamage float64   `yaml:"attack_damage"`
	Reward       string    `yaml:"reward"`
	Requires     string    `yaml:"requires"`
	Trigger      Area      `yaml:"trigger"`
	Support      *StatsDoc `yaml:"support"`
}

// ItemDoc places one item on the ground.
type ItemDoc struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// PortalDoc is a portal entry.
type PortalDoc struct {
	ID     string  `yaml:"id"`
	X1     float64 `yaml:"x1"`
	X2     float64 `yaml:"x2"`
	Y1     float64 `yaml:"y1"`
	Y2     float64 `yaml:"y2"`
	Target Point   `yaml:"target"`
	Key    string  `yaml:"key"`
}

// SignDoc is a sign entry.
type SignDoc struct {
	X1      float64 `yaml:"x1"`
	X2      float64 `yaml:"x2"`
	Y1      float64 `yaml:"y1"`
	Y2      float64 `yaml:"y2"`
	Message string  `yaml:"message"`
}

// NPCDoc is an NPC entry.
type NPCDoc struct {
	SignDoc `yaml:",inline"`
	Name    string `yaml:"name"`
	Sprite  string `yaml:"sprite"`
}

// Scene is the scene section of a map document.
type Scene struct {
	Start   *Point      `yaml:"player_start"`
	Enemies EnemySpawns `yaml:"enemies"`
	Bosses  []BossDoc   `yaml:"bosses"`
	Items   []ItemDoc   `yaml:"items"`
	Portals []PortalDoc `yaml:"portals"`
	Signs   []SignDoc   `yaml:"signs"`
	NPCs    []NPCDoc    `yaml:"npcs"`
}

// ParseScene extracts the scene section from a map document.
// A document without one yields an empty scene.
func ParseScene(data []byte) (Scene, error) {
	var doc struct {
		Scene Scene `yaml:"scene"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Scene{}, fmt.Errorf("game: parse scene: %w", err)
	}
	s := doc.Scene
	if s.Enemies.Sprite == "" {
		s.Enemies.Sprite = "skeleton"
	}
	for i := range s.Bosses {
		if s.Bosses[i].Sprite == "" {
			s.Bosses[i].Sprite = "bosses"
		}
		if s.Bosses[i].Support != nil && s.Bosses[i].Support.Sprite == "" {
			s.Bosses[i].Support.Sprite = s.Enemies.Sprite
		}
	}
	return s, nil
}

// Regions builds the interaction regions of the scene.
func (s Scene) Regions() []region.Region {
	out := make([]region.Region, 0, len(s.Portals)+len(s.Signs)+len(s.NPCs))
	for _, p := range s.Portals {
		out = append(out, region.NewPortal(p.ID, p.X1, p.X2, p.Y1, p.Y2, p.Target.Vec(), p.Key))
	}
	for _, sg := range s.Signs {
		out = append(out, region.NewSign(sg.X1, sg.X2, sg.Y1, sg.Y2, sg.Message))
	}
	for _, n := range s.NPCs {
		out = append(out, region.NewNPC(n.Name, n.Sprite, n.X1, n.X2, n.Y1, n.Y2, n.Message))
	}
	return out
}

// sprites lists every sheet the scene draws, for the missing-asset check.
func (s Scene) sprites() []string {
	names := []string{s.Enemies.Sprite}
	for _, b := range s.Bosses {
		names = append(names, b.Sprite)
		if b.Support != nil {
			names = append(names, b.Support.Sprite)
		}
	}
	for _, n := range s.NPCs {
		if n.Sprite != "" {
			names = append(names, n.Sprite)
		}
	}
	return names
}
