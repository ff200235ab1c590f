package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the settings document.
// Search order: customPath -> ~/.rpg/configs/settings.yaml -> ./configs/settings.yaml -> embedded default.
// Every document is decoded over DefaultSettings, so absent fields keep their defaults.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSettings(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("settings.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/settings.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a settings document over the defaults and repairs
// values that would break the simulation.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSettings(), err
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces non-positive tuning values with their defaults and
// keeps the enemy tracking band non-empty.
func (s *Settings) sanitize() {
	def := DefaultSettings()

	if s.Player.HPMax <= 0 {
		s.Player.HPMax = def.Player.HPMax
	}
	if s.Player.StartingLevel <= 0 {
		s.Player.StartingLevel = def.Player.StartingLevel
	}
	if s.Gameplay.PlayerSpeed <= 0 {
		s.Gameplay.PlayerSpeed = def.Gameplay.PlayerSpeed
	}
	if s.Gameplay.DashMultiplier <= 0 {
		s.Gameplay.DashMultiplier = def.Gameplay.DashMultiplier
	}
	if s.Gameplay.EnemyTrackingRange <= 0 {
		s.Gameplay.EnemyTrackingRange = def.Gameplay.EnemyTrackingRange
	}
	if s.Gameplay.EnemyMinRange < 0 {
		s.Gameplay.EnemyMinRange = def.Gameplay.EnemyMinRange
	}
	// An empty band would stop every enemy from tracking.
	if s.Gameplay.EnemyMinRange >= s.Gameplay.EnemyTrackingRange {
		s.Gameplay.EnemyMinRange = def.Gameplay.EnemyMinRange
		s.Gameplay.EnemyTrackingRange = def.Gameplay.EnemyTrackingRange
	}
	if s.Progression.InitialXPNext <= 0 {
		s.Progression.InitialXPNext = def.Progression.InitialXPNext
	}
	if s.Progression.XPGrowth <= 1 {
		s.Progression.XPGrowth = def.Progression.XPGrowth
	}
	if s.Video.CellWidth <= 0 {
		s.Video.CellWidth = def.Video.CellWidth
	}
	if s.Video.CellHeight <= 0 {
		s.Video.CellHeight = def.Video.CellHeight
	}
	if s.Video.FPS <= 0 {
		s.Video.FPS = def.Video.FPS
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rpg", "configs", filename)
}
