package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the documented fallback for every settings field.
func DefaultSettings() Settings {
	return Settings{
		Player: PlayerSettings{
			Name:          "Player",
			X:             400,
			Y:             240,
			HPMax:         100,
			Attack:        100,
			Defence:       40,
			StartingGold:  0,
			StartingLevel: 1,
			Sprite:        "hero",
		},
		Gameplay: GameplaySettings{
			PlayerSpeed:         250,
			DashMultiplier:      2.0,
			EnemyTrackingRange:  400,
			EnemyMinRange:       50,
			EnemyAttackRange:    40,
			EnemyAttackDamage:   8,
			EnemyAttackCooldown: 1.0,
			PortalCooldown:      0.8,
			PickupRange:         40,
			KillXP:              100,
			KillGold:            5,
			SupportSpawnChance:  0.5,
		},
		Progression: ProgressionSettings{
			InitialXPNext:   100,
			XPGrowth:        1.12,
			HPPerLevel:      10,
			AttackPerLevel:  2,
			DefencePerLevel: 2,
			LevelHeal:       20,
			RewardEvery:     5,
			Rewards: []RewardEntry{
				{Item: "Health Potion", Weight: 3},
				{Item: "Elixir", Weight: 1},
			},
		},
		Video: VideoSettings{
			CellWidth:  16,
			CellHeight: 32,
			FPS:        60,
			Resolution: [2]int{80, 24},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				HealthMultiplier: 1.0,
				DamageMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default settings document.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
