// Package config provides YAML-based settings loading and difficulty
// management for the RPG runtime.
package config

// Settings is the settings document: player start stats, gameplay tuning,
// progression curve, video and difficulty.
type Settings struct {
	Player      PlayerSettings      `yaml:"player"`
	Gameplay    GameplaySettings    `yaml:"gameplay"`
	Progression ProgressionSettings `yaml:"progression"`
	Video       VideoSettings       `yaml:"video"`
	Difficulty  DifficultyConfig    `yaml:"difficulty"`
}

// PlayerSettings defines the new-game player.
type PlayerSettings struct {
	Name          string  `yaml:"name"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	HPMax         float64 `yaml:"hp_max"`
	Attack        int     `yaml:"attack"`
	Defence       int     `yaml:"defence"`
	StartingGold  int     `yaml:"starting_gold"`
	StartingLevel int     `yaml:"starting_level"`
	Sprite        string  `yaml:"sprite"` // sprite sheet name
}

// GameplaySettings holds movement, AI and interaction tuning.
type GameplaySettings struct {
	PlayerSpeed         float64 `yaml:"player_speed"`
	DashMultiplier      float64 `yaml:"dash_multiplier"`
	EnemyTrackingRange  float64 `yaml:"enemy_tracking_range"`
	EnemyMinRange       float64 `yaml:"enemy_min_range"`
	EnemyAttackRange    float64 `yaml:"enemy_attack_range"`
	EnemyAttackDamage   float64 `yaml:"enemy_attack_damage"`
	EnemyAttackCooldown float64 `yaml:"enemy_attack_cooldown"` // seconds
	PortalCooldown      float64 `yaml:"portal_cooldown"`       // seconds
	PickupRange         float64 `yaml:"pickup_range"`
	KillXP              int     `yaml:"kill_xp"`
	KillGold            int     `yaml:"kill_gold"`
	SupportSpawnChance  float64 `yaml:"support_spawn_chance"` // per second inside the boss arena
}

// ProgressionSettings defines the leveling curve.
type ProgressionSettings struct {
	InitialXPNext   float64       `yaml:"initial_xp_next"`
	XPGrowth        float64       `yaml:"xp_growth"`
	HPPerLevel      float64       `yaml:"hp_per_level"`
	AttackPerLevel  int           `yaml:"attack_per_level"`
	DefencePerLevel int           `yaml:"defence_per_level"`
	LevelHeal       float64       `yaml:"level_heal"`
	RewardEvery     int           `yaml:"reward_every"`
	Rewards         []RewardEntry `yaml:"rewards"`
}

// RewardEntry is one weighted outcome of the milestone reward draw.
type RewardEntry struct {
	Item   string `yaml:"item"`
	Weight int    `yaml:"weight"`
}

// VideoSettings maps world pixels onto terminal cells.
type VideoSettings struct {
	CellWidth  int    `yaml:"cell_width"`  // world pixels per column
	CellHeight int    `yaml:"cell_height"` // world pixels per row
	FPS        int    `yaml:"fps"`
	Resolution [2]int `yaml:"resolution"` // fallback screen size when no terminal is attached
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Player level or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HealthMultiplier float64 `yaml:"health_multiplier"` // Added to enemy hp multiplier at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier"` // Added to enemy damage multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the settings based on a difficulty preset.
// An empty preset leaves the document untouched.
func ApplyPreset(s *Settings, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		s.Difficulty.Enabled = false
	default:
		s.Difficulty.Enabled = true
		s.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
