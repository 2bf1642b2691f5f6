package config

import (
	_ "embed"
)

//go:embed defaults/planets.yaml
var defaultPlanetsYAML []byte

// DefaultPlanetsConfig returns the built-in tuning.
func DefaultPlanetsConfig() PlanetsConfig {
	return PlanetsConfig{
		Engine: EngineConfig{
			TypeCount:         6,
			PointsPerToken:    10,
			ReshuffleAttempts: 100,
		},
		Pacing: PacingConfig{
			Swap:        4,
			Remove:      6,
			Fall:        4,
			Refill:      4,
			Shuffle:     10,
			LevelPause:  60,
			InvalidSwap: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraTypes:    1,
				MoveReduction: 2,
				TargetBonus:   0.25,
			},
		},
		LevelsDir: "~/.planetmatch/levels",
	}
}
