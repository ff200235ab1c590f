package game

import (
	"fmt"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/region"
)

// spawnEnemies fills the spawn table: every fixed point, then Count random
// points inside the area. Random points that land in a wall are retried.
func (g *Game) spawnEnemies() {
	spawns := g.scene.Enemies
	n := 0
	for _, pt := range spawns.Fixed {
		n++
		g.enemies = append(g.enemies, g.newEnemy(fmt.Sprintf("Enemy %d", n), pt.Vec(), spawns.StatsDoc))
	}

	area := spawns.Random.Area.Region()
	for i := 0; i < spawns.Random.Count; i++ {
		pos, ok := g.randomOpenPoint(area, entity.ActorSize)
		if !ok {
			g.log.Warn("no open spawn point", "area", spawns.Random.Area)
			continue
		}
		n++
		g.enemies = append(g.enemies, g.newEnemy(fmt.Sprintf("Enemy %d", n), pos, spawns.StatsDoc))
	}
}

// newEnemy creates a regular enemy with difficulty-scaled hp and damage.
func (g *Game) newEnemy(name string, pos core.Vec, st StatsDoc) *entity.Enemy {
	gp := g.ctx.Settings.Gameplay
	stats, damage := g.scaled(st, gp.EnemyAttackDamage)
	return entity.NewEnemy(name, pos, stats, entity.AttackTuning{
		Range:    gp.EnemyAttackRange,
		Damage:   damage,
		Cooldown: gp.EnemyAttackCooldown,
	}, st.Sprite)
}

func (g *Game) scaled(st StatsDoc, baseDamage float64) (entity.EnemyStats, float64) {
	lvl := g.player.Level
	return entity.EnemyStats{
		HP:      g.difficulty.EnemyHealth(st.HP, lvl, g.elapsed),
		Attack:  st.Attack,
		Defence: st.Defence,
		Speed:   st.Speed,
	}, g.difficulty.EnemyDamage(baseDamage, lvl, g.elapsed)
}

func (g *Game) randomOpenPoint(area region.Region, size int) (core.Vec, bool) {
	w, h := area.X2-area.X1, area.Y2-area.Y1
	if w < 0 || h < 0 {
		return core.Vec{}, false
	}
	for i := 0; i < spawnAttempts; i++ {
		p := core.V(area.X1+g.rng.Float64()*w, area.Y1+g.rng.Float64()*h)
		if g.world.Contains(p) && !g.world.Collides(core.RectAround(p.X, p.Y, size, size)) {
			return p, true
		}
	}
	return core.Vec{}, false
}

// updateBosses spawns a boss the first time the player enters its
// trigger, provided the boss it requires has fallen. While a boss with
// support is alive and the player is in its arena, support enemies
// appear at SupportSpawnChance per second.
func (g *Game) updateBosses(dt float64) {
	pos := g.player.Pos
	for _, slot := range g.bosses {
		if slot.defeated || !slot.trigger.ContainsVec(pos) {
			continue
		}
		if !slot.spawned {
			if !g.bossDefeated(slot.doc.Requires) {
				continue
			}
			g.spawnBoss(slot)
			continue
		}
		if slot.doc.Support != nil && g.rng.Float64() < g.ctx.Settings.Gameplay.SupportSpawnChance*dt {
			g.spawnSupport(slot)
		}
	}
}

func (g *Game) bossDefeated(name string) bool {
	if name == "" {
		return true
	}
	for _, slot := range g.bosses {
		if slot.doc.Name == name {
			return slot.defeated
		}
	}
	// A requirement naming no boss in this scene can never be met.
	return false
}

func (g *Game) spawnBoss(slot *bossSlot) {
	d := slot.doc
	gp := g.ctx.Settings.Gameplay

	baseDamage := d.AttackDamage
	if baseDamage <= 0 {
		baseDamage = gp.EnemyAttackDamage
	}
	attackRange := d.AttackRange
	if attackRange <= 0 {
		attackRange = gp.EnemyAttackRange
	}

	stats, damage := g.scaled(d.StatsDoc, baseDamage)
	boss := entity.NewBoss(d.Name, d.At.Vec(), stats, entity.AttackTuning{
		Range:    attackRange,
		Damage:   damage,
		Cooldown: gp.EnemyAttackCooldown,
	}, d.Sprite, entity.BossTraits{Index: d.Index, Reward: d.Reward, Requires: d.Requires})

	slot.spawned = true
	slot.enemy = boss
	g.enemies = append(g.enemies, boss)
	g.notify("%s appears!", d.Name)
	g.log.Info("boss spawned", "boss", d.Name, "hp", boss.HPMax)
}

func (g *Game) spawnSupport(slot *bossSlot) {
	pos, ok := g.randomOpenPoint(slot.trigger, entity.ActorSize)
	if !ok {
		return
	}
	e := g.newEnemy("Support", pos, *slot.doc.Support)
	g.enemies = append(g.enemies, e)
	g.log.Debug("support spawned", "boss", slot.doc.Name, "x", pos.X, "y", pos.Y)
}
