// Package config provides YAML-based engine tuning and difficulty
// management for planet match.
package config

// PlanetsConfig contains all tuning for the planet-match game.
type PlanetsConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	// LevelsDir holds custom level files. A leading ~ is expanded.
	LevelsDir string `yaml:"levels_dir"`
}

// EngineConfig tunes board generation and scoring.
type EngineConfig struct {
	TypeCount         int `yaml:"type_count"`
	PointsPerToken    int `yaml:"points_per_token"`
	ReshuffleAttempts int `yaml:"reshuffle_attempts"`
}

// PacingConfig sets how many ticks each kind of board event stays on
// screen before the next one is shown. Input is locked until the queue
// drains.
type PacingConfig struct {
	Swap        int `yaml:"swap"`
	Remove      int `yaml:"remove"`
	Fall        int `yaml:"fall"`
	Refill      int `yaml:"refill"`
	Shuffle     int `yaml:"shuffle"`
	LevelPause  int `yaml:"level_pause"` // ticks between a won level and the next
	InvalidSwap int `yaml:"invalid_swap"`
}

// DifficultyConfig defines how the campaign ramps up.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // campaign level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraTypes    int     `yaml:"extra_types"`    // planet types added at max difficulty
	MoveReduction int     `yaml:"move_reduction"` // moves removed at max difficulty
	TargetBonus   float64 `yaml:"target_bonus"`   // target multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// TypeCountForPreset returns the planet type count for a preset. Fewer
// types make matches more likely.
func TypeCountForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
