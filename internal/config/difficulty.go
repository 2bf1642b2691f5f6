package config

import "math"

// DifficultyManager scales level parameters as a campaign run advances.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "level"
}

// Level returns the difficulty (0.0 to 1.0) for a zero-based campaign
// level index.
func (d *DifficultyManager) Level(index int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(index)/maxAt, 0.0, 1.0)
}

// TypeCount returns the planet type count for a level.
func (d *DifficultyManager) TypeCount(base, index int) int {
	return base + int(math.Round(d.Level(index)*float64(d.cfg.Scaling.ExtraTypes)))
}

// Moves returns the move budget for a level. At least one move remains.
func (d *DifficultyManager) Moves(base, index int) int {
	result := base - int(d.Level(index)*float64(d.cfg.Scaling.MoveReduction))
	if result < 1 {
		result = 1
	}
	return result
}

// Target returns the target score for a level, rounded to the nearest ten.
func (d *DifficultyManager) Target(base, index int) int {
	scaled := float64(base) * (1.0 + d.Level(index)*d.cfg.Scaling.TargetBonus)
	return int(math.Round(scaled/10)) * 10
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
