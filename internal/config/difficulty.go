package config

import "math"

// DifficultyManager scales enemy stats by player level or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(playerLevel int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(playerLevel-1) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyHealth scales a spawn's base hp by the current difficulty.
func (d *DifficultyManager) EnemyHealth(base float64, playerLevel int, elapsed float64) float64 {
	level := d.Level(playerLevel, elapsed)
	return base * (1.0 + level*d.cfg.Scaling.HealthMultiplier)
}

// EnemyDamage scales a spawn's base attack damage by the current difficulty.
func (d *DifficultyManager) EnemyDamage(base float64, playerLevel int, elapsed float64) float64 {
	level := d.Level(playerLevel, elapsed)
	return base * (1.0 + level*d.cfg.Scaling.DamageMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
