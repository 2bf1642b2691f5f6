package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for config, levels, logs and the
// score database.
const AppDir = ".planetmatch"

// LoadPlanets loads the planet-match configuration.
// Search order: customPath -> ~/.planetmatch/configs/planets.yaml -> ./configs/planets.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadPlanets(customPath string) (PlanetsConfig, error) {
	cfg := DefaultPlanetsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("planets.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = DefaultPlanetsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/planets.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = DefaultPlanetsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlanetsYAML, &cfg); err != nil {
		return DefaultPlanetsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// ApplyPlanetsPreset modifies the config based on a difficulty preset.
func ApplyPlanetsPreset(cfg *PlanetsConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Engine.TypeCount = TypeCountForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Scaling.MoveReduction = 0
	case DifficultyHard:
		cfg.Difficulty.Scaling.MoveReduction = 3
		cfg.Difficulty.Scaling.TargetBonus = 0.5
	}
}

// normalize replaces unusable values with defaults and expands ~.
func normalize(cfg PlanetsConfig) PlanetsConfig {
	def := DefaultPlanetsConfig()
	if cfg.Engine.TypeCount < 3 {
		cfg.Engine.TypeCount = def.Engine.TypeCount
	}
	if cfg.Engine.PointsPerToken <= 0 {
		cfg.Engine.PointsPerToken = def.Engine.PointsPerToken
	}
	if cfg.Engine.ReshuffleAttempts <= 0 {
		cfg.Engine.ReshuffleAttempts = def.Engine.ReshuffleAttempts
	}
	cfg.LevelsDir = ExpandHome(cfg.LevelsDir)
	return cfg
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// UserPath returns a path under ~/.planetmatch, or "" if the home
// directory is unknown.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// userConfigPath returns the path to a config file in user's config directory.
func userConfigPath(filename string) string {
	return UserPath("configs", filename)
}
