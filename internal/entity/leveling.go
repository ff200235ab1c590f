package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/item"
)

// LevelUp is the record of one level gained.
type LevelUp struct {
	Level  int
	Reward *item.Item // milestone reward, nil on ordinary levels
}

// Progression applies the leveling curve to a player.
type Progression struct {
	Settings config.ProgressionSettings
	Items    *item.Table
	Rng      *rand.Rand
}

// GainXP adds experience and applies as many level-ups as it pays for.
// Overflow carries into the next level.
func (pr *Progression) GainXP(p *Player, amount float64) []LevelUp {
	if amount <= 0 {
		return nil
	}
	p.XP += amount

	var ups []LevelUp
	for p.XPNext > 0 && p.XP >= p.XPNext {
		p.XP -= p.XPNext
		ups = append(ups, pr.LevelUp(p))
	}
	return ups
}

// LevelUp raises the level by one: xp_next grows by growth^(new level),
// stats increase, hp is partly restored, and every RewardEvery-th level
// draws one reward item.
func (pr *Progression) LevelUp(p *Player) LevelUp {
	s := pr.Settings
	p.Level++
	p.XPNext *= math.Pow(s.XPGrowth, float64(p.Level))

	p.HPMax += s.HPPerLevel
	p.Attack += s.AttackPerLevel
	p.Defence += s.DefencePerLevel
	p.Heal(s.LevelHeal)

	up := LevelUp{Level: p.Level}
	if s.RewardEvery > 0 && p.Level%s.RewardEvery == 0 {
		up.Reward = pr.drawReward()
	}
	return up
}

// drawReward picks one configured reward by weight. Entries whose item
// is not in the table are skipped.
func (pr *Progression) drawReward() *item.Item {
	type candidate struct {
		it     *item.Item
		weight int
	}
	var pool []candidate
	total := 0
	for _, r := range pr.Settings.Rewards {
		if r.Weight <= 0 || pr.Items == nil {
			continue
		}
		it, err := pr.Items.ByName(r.Item)
		if err != nil {
			continue
		}
		pool = append(pool, candidate{it, r.Weight})
		total += r.Weight
	}
	if total == 0 {
		return nil
	}

	n := total - 1
	if pr.Rng != nil {
		n = pr.Rng.Intn(total)
	}
	for _, c := range pool {
		if n < c.weight {
			return c.it
		}
		n -= c.weight
	}
	return pool[len(pool)-1].it
}
